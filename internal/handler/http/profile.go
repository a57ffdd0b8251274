package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/models"
)

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	var req models.SaveProfileWithStatusRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	profile, status, err := h.services.ProfileService.Save(r.Context(), identity(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, newSaveProfileResponse(profile, status), http.StatusCreated)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, status, err := h.services.ProfileService.Get(r.Context(), identity(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, newSaveProfileResponse(profile, status), http.StatusOK)
}

func newSaveProfileResponse(profile models.Profile, status *models.ProfileStatus) models.SaveProfileResponse {
	p := models.NewProfileResponse(profile)
	resp := models.SaveProfileResponse{Profile: &p}
	if status != nil {
		s := models.NewProfileStatusResponse(*status)
		resp.Status = &s
	}
	return resp
}
