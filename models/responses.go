package models

import "time"

// Response DTOs are built field by field from domain values so that
// sensitive attributes (password hashes, unpublished flags, foreign keys)
// can only reach the wire if they are listed here.

// UserResponse is the public shape of a user account.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  *string   `json:"username"`
	Firstname *string   `json:"firstname"`
	Lastname  *string   `json:"lastname"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewUserResponse builds the public view of u.
func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserResponses builds the public view of every user in users.
func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// NewIdentityResponse builds the public view of the request identity.
func NewIdentityResponse(i Identity) UserResponse {
	return UserResponse{
		ID:        i.UserID,
		Email:     i.Email,
		Username:  i.Username,
		Firstname: i.Firstname,
		Lastname:  i.Lastname,
		Role:      i.Role,
		CreatedAt: i.CreatedAt,
		UpdatedAt: i.UpdatedAt,
	}
}

// PostResponse is the public shape of a post. The published flag is not exposed.
type PostResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	AuthorID  *string   `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewPostResponse(p Post) PostResponse {
	return PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func NewPostResponses(posts []Post) []PostResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, NewPostResponse(p))
	}
	return out
}

// ProfileResponse is the client view of a profile.
type ProfileResponse struct {
	ID   string  `json:"id"`
	Bio  *string `json:"bio"`
	City *string `json:"city"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{ID: p.ID, Bio: p.Bio, City: p.City}
}

// ProfileStatusResponse is the client view of a profile status.
type ProfileStatusResponse struct {
	ID            string  `json:"id"`
	Content       *string `json:"content"`
	Emoji         *string `json:"emoji"`
	ClearInterval *int    `json:"clearInterval"`
}

func NewProfileStatusResponse(s ProfileStatus) ProfileStatusResponse {
	return ProfileStatusResponse{
		ID:            s.ID,
		Content:       s.Content,
		Emoji:         s.Emoji,
		ClearInterval: s.ClearInterval,
	}
}

// SaveProfileResponse is returned by PUT /profile and GET /profile.
type SaveProfileResponse struct {
	Profile *ProfileResponse       `json:"profile,omitempty"`
	Status  *ProfileStatusResponse `json:"status,omitempty"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// DeletedResponse acknowledges a deletion.
type DeletedResponse struct {
	ID string `json:"id"`
}

// BoolResponse wraps a boolean outcome.
type BoolResponse struct {
	Data bool `json:"data"`
}
