package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WahyuuR/RekomendationAnime/internal/cache"
	"github.com/WahyuuR/RekomendationAnime/internal/models"
	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
	"github.com/WahyuuR/RekomendationAnime/internal/repository"
)

const (
	DefaultTopN = 5
	MaxTopN     = 50 // por seguridad, no deja pedir el catálogo entero
)

type RecommendService struct {
	holder  *recommender.ModelHolder
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	holder *recommender.ModelHolder,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		holder:  holder,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	Title   string
	TopN    int
	Refresh bool
	// UserID es 0 para consultas anónimas; solo se usa para el historial.
	UserID int
}

func cacheKey(req RecRequest) string {
	// Cachea por título + n (no incluye refresh, refresh solo decide si usar cache)
	return fmt.Sprintf("rec:title:%s:n:%d", strings.ToLower(req.Title), req.TopN)
}

// Recommend aplica los límites de TopN, consulta el modelo precalculado
// y devuelve los animes más similares al título pedido.
// recommender.ErrTitleNotFound sube tal cual para que el handler lo
// convierta en un 404 informativo.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecommendedAnime, error) {
	// defaults y límites para TopN (el core solo trunca, el clamp es nuestro)
	if req.TopN <= 0 {
		req.TopN = DefaultTopN
	} else if req.TopN > MaxTopN {
		req.TopN = MaxTopN
	}

	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}

	// nunca más que el resto del catálogo
	if max := model.Catalog.Len() - 1; req.TopN > max {
		req.TopN = max
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecommendedAnime
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Ranking sobre la matriz precalculada
	items, err := model.Recommend(req.Title, req.TopN)
	if err != nil {
		return nil, err
	}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		recItems := make([]models.RecItem, 0, len(items))
		for _, it := range items {
			recItems = append(recItems, models.RecItem{
				Title:      it.Title,
				Similarity: it.Similarity,
			})
		}

		hist := &models.Recommendation{
			UserID:           req.UserID,
			QueryTitle:       req.Title,
			Algo:             "tfidf-content",
			SimilarityMetric: "cosine",
			TopN:             req.TopN,
			Items:            recItems,
			CreatedAt:        time.Now(),
		}

		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// History devuelve las últimas consultas guardadas de un usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	return s.recRepo.FindByUser(ctx, userID, limit)
}

// ====== Mantenimiento del modelo (admin) ======

// ModelSummary estado del modelo para /admin/model/summary.
type ModelSummary struct {
	Animes    int       `json:"animes"`
	VocabSize int       `json:"vocabSize"`
	BuiltAt   time.Time `json:"builtAt"`
}

func (s *RecommendService) Summary() (*ModelSummary, error) {
	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}
	return &ModelSummary{
		Animes:    model.Catalog.Len(),
		VocabSize: len(model.Vocab),
		BuiltAt:   model.BuiltAt,
	}, nil
}

// Rebuild recarga el dataset y reconstruye vectores + matriz completos.
func (s *RecommendService) Rebuild() (*ModelSummary, error) {
	model, err := s.holder.Rebuild()
	if err != nil {
		return nil, err
	}
	return &ModelSummary{
		Animes:    model.Catalog.Len(),
		VocabSize: len(model.Vocab),
		BuiltAt:   model.BuiltAt,
	}, nil
}
