package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/WahyuuR/RekomendationAnime/internal/service"

	"github.com/go-chi/chi/v5"
)

type AnimeHandler struct {
	svc *service.AnimeService
}

func NewAnimeHandler(s *service.AnimeService) *AnimeHandler { return &AnimeHandler{svc: s} }

// @Summary Get anime
// @Tags anime
// @Produce json
// @Param title path string true "título exacto (case-insensitive)"
// @Success 200 {object} models.Anime
// @Router /anime/{title} [get]
func (h *AnimeHandler) GetAnime(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	title := chi.URLParam(r, "title")

	a, err := h.svc.GetByTitle(title)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if a == nil {
		http.NotFound(w, r)
		return
	}
	_ = json.NewEncoder(w).Encode(a)
}

// @Summary Buscar / listar animes (paginado)
// @Tags anime
// @Produce json
// @Param q query string false "búsqueda por título"
// @Param genre query string false "filtrar por género"
// @Param limit query int false "límite"
// @Param offset query int false "offset"
// @Success 200 {array} models.Anime
// @Router /anime/search [get]
func (h *AnimeHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 {
		limit = 20
	}

	animes, err := h.svc.Search(q, genre, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(animes)
}

// @Summary Top animes por score
// @Tags anime
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Anime
// @Router /anime/top [get]
func (h *AnimeHandler) Top(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	animes, err := h.svc.Top(limit)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(animes)
}
