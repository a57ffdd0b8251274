// Package rbac holds the role policy shared by the route guards and the
// ownership checks of the services. It has no transport dependencies.
package rbac

import "github.com/MKhiriev/go-rest-auth/models"

// Decision is the outcome of a role check.
type Decision int

const (
	// Allow lets the request through.
	Allow Decision = iota

	// Unauthenticated means roles are required but no identity is present.
	Unauthenticated

	// Forbidden means the identity lacks every required role.
	Forbidden
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// IsAdmin reports whether role is the superuser role.
func IsAdmin(role models.Role) bool { return role == models.RoleAdmin }

// Satisfies reports whether role meets a requirement for any of required.
// ADMIN satisfies every requirement, including an empty one.
func Satisfies(role models.Role, required ...models.Role) bool {
	if IsAdmin(role) {
		return true
	}

	for _, r := range required {
		if r == role {
			return true
		}
	}

	return false
}

// Decide evaluates the role requirement of a route against the request identity.
// No required roles always allows; a missing identity is checked before membership.
func Decide(identity *models.Identity, required ...models.Role) Decision {
	if len(required) == 0 {
		return Allow
	}

	if identity == nil {
		return Unauthenticated
	}

	if !Satisfies(identity.Role, required...) {
		return Forbidden
	}

	return Allow
}

// CanModify reports whether identity may mutate a resource owned by ownerID.
// The owner and any ADMIN may; resources without an owner are ADMIN-only.
func CanModify(identity models.Identity, ownerID *string) bool {
	if IsAdmin(identity.Role) {
		return true
	}

	return ownerID != nil && *ownerID != "" && *ownerID == identity.UserID
}
