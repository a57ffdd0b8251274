package http

import (
	"net/http"

	"github.com/MKhiriev/go-rest-auth/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPublished(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewPostResponses(posts), http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPublished(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewPostResponse(post), http.StatusOK)
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePostRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Create(r.Context(), identity(r), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewPostResponse(post), http.StatusCreated)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePostRequest
	if err := h.decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.services.PostService.Update(r.Context(), identity(r), chi.URLParam(r, "id"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.NewPostResponse(post), http.StatusOK)
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.services.PostService.Delete(r.Context(), identity(r), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.DeletedResponse{ID: id}, http.StatusOK)
}
