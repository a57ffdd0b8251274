package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AdminUserService.CreateUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AdminUserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponses(users), http.StatusOK)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := models.SearchUserRequest{
		Email:     query.Get("email"),
		Firstname: query.Get("firstname"),
		Lastname:  query.Get("lastname"),
	}
	if err := h.validator.Validate(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	users, err := h.services.AdminUserService.SearchUsers(r.Context(), models.UserFilter{
		Email:     req.Email,
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponses(users), http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AdminUserService.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AdminUserService.UpdateUser(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) forceUpdatePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ForceUpdatePasswordRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.AdminUserService.UpdatePassword(r.Context(), chi.URLParam(r, "id"), req.Password); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.BoolResponse{Data: true}, http.StatusOK)
}

func (h *Handler) updateRole(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRoleRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AdminUserService.UpdateRole(r.Context(), chi.URLParam(r, "id"), req.Role)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) updateEmail(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateEmailRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AdminUserService.UpdateEmail(r.Context(), chi.URLParam(r, "id"), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) removeUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AdminUserService.RemoveUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.UserService.UpdateMe(r.Context(), identity(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewUserResponse(user), http.StatusOK)
}

func (h *Handler) updateMyPassword(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePasswordRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.UserService.UpdateMyPassword(r.Context(), identity(r), req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.BoolResponse{Data: true}, http.StatusOK)
}
