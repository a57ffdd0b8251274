package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/internal/service"
	"github.com/MKhiriev/go-rest-auth/internal/store"
	"github.com/MKhiriev/go-rest-auth/internal/utils"
	"github.com/MKhiriev/go-rest-auth/internal/validators"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusMap is matched top to bottom, so an error wrapping several
// sentinels takes the status of the first one listed.
var errorStatusMap = []errorStatus{
	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{ErrInvalidJSON, http.StatusBadRequest},
	{validators.ErrInvalidRequest, http.StatusBadRequest},

	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized},
	{service.ErrForbidden, http.StatusForbidden},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrProfileNotFound, http.StatusNotFound},

	{service.ErrInvalidCredentials, http.StatusBadRequest},
	{service.ErrIncorrectPassword, http.StatusBadRequest},
	{service.ErrInvalidRole, http.StatusBadRequest},
	{utils.ErrPasswordTooLong, http.StatusBadRequest},

	{service.ErrEmailConflict, http.StatusConflict},
	{service.ErrUsernameConflict, http.StatusConflict},
}

// statusFromError returns the response status for err and the message a
// client may see. Server-side failures never expose err itself.
func statusFromError(err error) (int, string) {
	for _, e := range errorStatusMap {
		if !errors.Is(err, e.target) {
			continue
		}
		if e.status >= http.StatusInternalServerError {
			return e.status, http.StatusText(e.status)
		}
		return e.status, e.target.Error()
	}
	return http.StatusInternalServerError, msgInternalError
}

// writeError logs err and writes it as a JSON error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var ve *validators.ValidationError
	if errors.As(err, &ve) {
		log.Debug().Err(err).Msg("request validation failed")
		utils.WriteError(w, http.StatusBadRequest, http.StatusText(http.StatusBadRequest), ve.Messages...)
		return
	}

	status, message := statusFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, message)
}
