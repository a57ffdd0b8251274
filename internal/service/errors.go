package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	//nolint:staticcheck // returned to clients verbatim
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailConflict      = errors.New("user with this email already exists")
	ErrUsernameConflict   = errors.New("user with this username already exists")
	ErrIncorrectPassword  = errors.New("password is incorrect")

	// ErrUnauthorized is returned by refresh when the presented token does not verify.
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("you don't have the permission")

	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrPostNotFound    = errors.New("post not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid role")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
