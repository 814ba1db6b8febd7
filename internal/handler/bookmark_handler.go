package handler

import (
	"encoding/json"
	"net/http"

	"github.com/WahyuuR/RekomendationAnime/internal/service"
)

type BookmarkHandler struct {
	svc *service.BookmarkService
}

func NewBookmarkHandler(s *service.BookmarkService) *BookmarkHandler {
	return &BookmarkHandler{svc: s}
}

type addBookmarkRequest struct {
	Title string `json:"title"`
}

// @Summary Agregar bookmark
// @Tags bookmarks
// @Security BearerAuth
// @Accept json
// @Param body body addBookmarkRequest true "título a guardar"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /me/bookmarks [post]
func (h *BookmarkHandler) Add(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req addBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		http.Error(w, "falta el campo title", http.StatusBadRequest)
		return
	}

	if err := h.svc.Add(r.Context(), userID, req.Title); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar bookmarks del usuario
// @Tags bookmarks
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.Anime
// @Router /me/bookmarks [get]
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	animes, err := h.svc.List(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(animes)
}

type removeBookmarksRequest struct {
	Titles []string `json:"titles"`
}

// @Summary Borrar varios bookmarks
// @Tags bookmarks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param body body removeBookmarksRequest true "títulos a borrar"
// @Success 200 {object} map[string]int64
// @Router /me/bookmarks [delete]
func (h *BookmarkHandler) RemoveMany(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req removeBookmarksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := h.svc.RemoveMany(r.Context(), userID, req.Titles)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]int64{"deleted": deleted})
}
