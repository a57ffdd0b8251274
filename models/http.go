package models

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,maxbytes=72"`
	Remembers bool   `json:"remembers,omitempty"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6,maxbytes=72"`
	Username  string  `json:"username" validate:"required"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Remembers bool    `json:"remembers,omitempty"`
}

// RefreshTokenRequest is the body of POST /auth/refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
	Remembers    bool   `json:"remembers,omitempty"`
}

// CreateUserRequest is the body of POST /users. An omitted password falls back
// to the default one and an omitted role to USER.
type CreateUserRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6,maxbytes=72"`
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Role      *Role   `json:"role,omitempty" validate:"omitempty,oneof=USER ADMIN"`
}

// UpdateUserRequest updates the name fields of an account.
type UpdateUserRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
}

// ForceUpdatePasswordRequest sets a new password without checking the current one.
type ForceUpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=6,maxbytes=72"`
}

// UpdatePasswordRequest changes the caller's own password.
type UpdatePasswordRequest struct {
	Password        string `json:"password" validate:"required,min=6,maxbytes=72"`
	CurrentPassword string `json:"currentPassword" validate:"required,min=6,maxbytes=72"`
}

// UpdateEmailRequest is the body of PUT /users/email/{id}.
type UpdateEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// UpdateRoleRequest is the body of PUT /users/role/{id}.
type UpdateRoleRequest struct {
	Role Role `json:"role" validate:"required,oneof=USER ADMIN"`
}

// SearchUserRequest is bound from the query string of GET /users/search.
type SearchUserRequest struct {
	Email     string `validate:"omitempty,email"`
	Firstname string
	Lastname  string
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title     string  `json:"title" validate:"required"`
	Published *bool   `json:"published" validate:"required"`
	Content   *string `json:"content,omitempty"`
}

// UpdatePostRequest is the body of PUT /posts/{id}. Every field is optional.
type UpdatePostRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Published *bool   `json:"published,omitempty"`
	Content   *string `json:"content,omitempty"`
}

// SaveProfileRequest holds the editable profile fields.
type SaveProfileRequest struct {
	Bio  *string `json:"bio,omitempty"`
	City *string `json:"city,omitempty"`
}

// SaveProfileStatusRequest holds the editable status fields.
type SaveProfileStatusRequest struct {
	Content       *string `json:"content,omitempty"`
	Emoji         *string `json:"emoji,omitempty"`
	ClearInterval *int    `json:"clearInterval,omitempty" validate:"omitempty,min=0"`
}

// SaveProfileWithStatusRequest is the body of PUT /profile.
type SaveProfileWithStatusRequest struct {
	Profile *SaveProfileRequest       `json:"profile,omitempty"`
	Status  *SaveProfileStatusRequest `json:"status,omitempty"`
}
