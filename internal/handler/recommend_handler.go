package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
	"github.com/WahyuuR/RekomendationAnime/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones por similitud de sinopsis
// @Tags recommend
// @Produce json
// @Param title query string true "título del anime favorito"
// @Param n query int false "cantidad de recomendaciones (máx 50, default 5)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {array} models.RecommendedAnime
// @Failure 404 {object} map[string]string "título no encontrado"
// @Router /recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	if title == "" {
		http.Error(w, "falta el parámetro title", http.StatusBadRequest)
		return
	}
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Title:   title,
		TopN:    n,
		Refresh: refresh,
		UserID:  UserIDFromContext(r.Context()),
	})
	if err != nil {
		// título inexistente: mensaje informativo, no error del servidor
		if errors.Is(err, recommender.ErrTitleNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"message": fmt.Sprintf("No encontramos %q en el catálogo. Revisa el título e intenta de nuevo.", title),
			})
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Param title query string true "título del anime favorito"
// @Param n query int false "cantidad de recomendaciones (máx 50, default 5)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	title := r.URL.Query().Get("title")
	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	refresh := r.URL.Query().Get("refresh") == "true"

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, procesando tu recomendación…",
	})

	// Progreso: la consulta en sí es una lectura sobre la matriz ya
	// precalculada, así que solo hay un paso que reportar
	conn.WriteJSON(map[string]any{
		"type": "progress",
		"msg":  fmt.Sprintf("Buscando %q en la matriz de similitud…", title),
	})

	items, err := h.svc.Recommend(r.Context(), service.RecRequest{
		Title:   title,
		TopN:    n,
		Refresh: refresh,
		UserID:  UserIDFromContext(r.Context()),
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final con recomendaciones
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"queryTitle":  title,
		"items":       items,
		"generatedAt": time.Now(),
	})
}

// @Summary Historial de consultas del usuario
// @Tags recommend
// @Security BearerAuth
// @Produce json
// @Param limit query int false "límite (default: 20)"
// @Success 200 {array} models.Recommendation
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 20
	}

	hist, err := h.svc.History(r.Context(), userID, int64(limit))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(hist)
}
