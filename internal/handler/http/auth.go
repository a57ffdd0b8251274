package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/internal/logger"
	"github.com/MKhiriev/go-rest-auth/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("email", req.Email).Msg("user registered")
	writeJSON(w, r, tokens, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, tokens, http.StatusCreated)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshTokenRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.services.AuthService.RefreshToken(r.Context(), req.RefreshToken, req.Remembers)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, tokens, http.StatusCreated)
}

// me answers from the request identity without touching storage.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, models.NewIdentityResponse(identity(r)), http.StatusOK)
}
