package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
)

const authorizationHeader = "Authorization"

// withIdentity resolves the bearer token, if any, into the request identity.
// It never rejects: any failure leaves the request anonymous and the guards
// decide what an anonymous caller may do.
func (h *Handler) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(authorizationHeader)
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Msg("proceeding anonymously")
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.VerifyAndResolveUser(ctx, token)
		if err != nil || identity == nil {
			log.Debug().Err(err).Msg("bearer token did not resolve to a user, proceeding anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, *identity)))
	})
}

// getTokenFromAuthHeader extracts the token from an "Authorization: Bearer <token>" value.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	return strings.TrimSpace(token), nil
}
