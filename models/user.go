package models

import "time"

// Role is the authorization role assigned to a user account.
type Role string

const (
	// RoleUser is the base role granted on self-registration.
	RoleUser Role = "USER"

	// RoleAdmin satisfies every role requirement.
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) String() string {
	return string(r)
}

// User represents an account entity used for authentication and authorization.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	// ID is the unique identifier of the user (UUID).
	ID string `json:"id"`

	// Email is unique across all accounts and is used as the login identifier.
	Email string `json:"email"`

	// Username is an optional unique display handle.
	Username *string `json:"username,omitempty"`

	// Password is the salted bcrypt hash. It is write-only from the API's perspective.
	Password string `json:"-"`

	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`

	Role Role `json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity is the authenticated subject of a single request.
// It is derived from a verified token and the stored user and never persisted.
type Identity struct {
	UserID    string
	Email     string
	Username  *string
	Firstname *string
	Lastname  *string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewIdentity builds the request identity from a stored user, dropping the password hash.
func NewIdentity(u User) Identity {
	return Identity{
		UserID:    u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Firstname: u.Firstname,
		Lastname:  u.Lastname,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserUpdate carries a partial update of a user. Nil fields are left untouched.
type UserUpdate struct {
	Email     *string
	Password  *string
	Firstname *string
	Lastname  *string
	Role      *Role
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.Password == nil && u.Firstname == nil && u.Lastname == nil && u.Role == nil
}

// UserFilter selects users by case-insensitive substring match on each non-empty field.
type UserFilter struct {
	Email     string
	Firstname string
	Lastname  string
}
