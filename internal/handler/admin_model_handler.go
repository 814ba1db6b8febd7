package handler

import (
	"encoding/json"
	"net/http"

	"github.com/WahyuuR/RekomendationAnime/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminModelHandler expone endpoints de mantenimiento del modelo.
type AdminModelHandler struct {
	svc *service.RecommendService
}

// NewAdminModelHandler crea el handler.
func NewAdminModelHandler(svc *service.RecommendService) *AdminModelHandler {
	return &AdminModelHandler{svc: svc}
}

// @Summary Resumen del modelo de similitud
// @Description Devuelve tamaño del catálogo, tamaño del vocabulario y fecha del último build.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ModelSummary
// @Failure 500 {string} string "error interno"
// @Router /admin/model/summary [get]
// GET /admin/model/summary
func (h *AdminModelHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// @Summary Reconstruir el modelo
// @Description Recarga el dataset y reconstruye vocabulario, vectores TF-IDF y matriz de similitud completos.
// @Tags admin-model
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.ModelSummary
// @Failure 500 {string} string "error interno"
// @Router /admin/model/rebuild [post]
// POST /admin/model/rebuild
func (h *AdminModelHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Rebuild()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminModelRoutes(r chi.Router, h *AdminModelHandler) {
	r.Route("/admin/model", func(r chi.Router) {
		r.Get("/summary", h.GetSummary)
		r.Post("/rebuild", h.Rebuild)
	})
}
