package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUniqueViolation is matched by every [UniqueViolationError].
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrEmailAlreadyExists is matched by a [UniqueViolationError] on the email column.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyExists is matched by a [UniqueViolationError] on the username column.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrPostNotFound is returned when no post matches the given id.
	ErrPostNotFound = errors.New("post was not found")

	// ErrProfileNotFound is returned when the user has no profile yet.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrProfileStatusNotFound is returned when the profile has no status.
	ErrProfileStatusNotFound = errors.New("profile status was not found")

	// ErrStorageUnavailable wraps failures the classifier marks as retryable:
	// lost connections, serialization failures and deadlocks.
	ErrStorageUnavailable = errors.New("storage is temporarily unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when the query builder rejects its input.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

// UniqueViolationError reports which unique column a write collided on.
// Field is "email", "username" or empty when the constraint is not recognised.
type UniqueViolationError struct {
	Field      string
	Constraint string
}

func (e *UniqueViolationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("unique constraint %q violated", e.Constraint)
	}
	return fmt.Sprintf("unique constraint violated on %s", e.Field)
}

// Is makes [errors.Is] match [ErrUniqueViolation] and the per-field sentinels.
func (e *UniqueViolationError) Is(target error) bool {
	switch target {
	case ErrUniqueViolation:
		return true
	case ErrEmailAlreadyExists:
		return e.Field == "email"
	case ErrUsernameAlreadyExists:
		return e.Field == "username"
	}
	return false
}
