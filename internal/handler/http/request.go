package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/models"
)

// decode reads the JSON body of r into dst and validates it. An empty body
// decodes as the zero value.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return h.validator.Validate(r.Context(), dst)
}

// identity returns the caller. Routes guarded by requireAuth or requireRoles
// always have one.
func identity(r *http.Request) models.Identity {
	id, _ := utils.GetIdentityFromContext(r.Context())
	return id
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
