package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/rbac"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// requireAuth passes only requests that carry a resolved identity.
func requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetIdentityFromContext(r.Context()); !ok {
			utils.WriteError(w, http.StatusUnauthorized, msgLoginRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// guestOnly passes only requests without an Authorization header. A header
// holding an expired or invalid token still counts as a logged-in caller.
func guestOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(authorizationHeader) != "" {
			utils.WriteError(w, http.StatusForbidden, msgForbiddenGuest)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireRoles passes requests whose identity satisfies any of roles.
func requireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var identity *models.Identity
			if id, ok := utils.GetIdentityFromContext(r.Context()); ok {
				identity = &id
			}

			switch rbac.Decide(identity, roles...) {
			case rbac.Unauthenticated:
				utils.WriteError(w, http.StatusUnauthorized, msgLoginRequired)
			case rbac.Forbidden:
				logger.FromRequest(r).Debug().
					Str("user_id", identity.UserID).
					Str("role", identity.Role.String()).
					Msg("missing required role")
				utils.WriteError(w, http.StatusForbidden, msgMissingRole)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}
