package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/WahyuuR/RekomendationAnime/internal/catalog"
	"github.com/WahyuuR/RekomendationAnime/internal/models"
	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
)

// newTestRecommendService arma el servicio sobre un catálogo sintético de
// n animes, sin Mongo ni Redis (recRepo nil y cache sin inicializar son
// no-ops, así que el clamp de TopN se prueba aislado).
func newTestRecommendService(t *testing.T, n int) *RecommendService {
	t.Helper()

	animes := make([]models.Anime, 0, n)
	animes = append(animes, models.Anime{Title: "Cowboy Bebop", SynopsisClean: "space bounty hunters"})
	for i := 1; i < n; i++ {
		animes = append(animes, models.Anime{
			Title:         fmt.Sprintf("Anime %02d", i),
			SynopsisClean: fmt.Sprintf("historia numero%d", i),
		})
	}

	holder := recommender.NewModelHolder(func() (*recommender.Model, error) {
		return recommender.BuildModel(catalog.New(animes)), nil
	})
	return NewRecommendService(holder, nil)
}

func TestRecommendServiceDefaultTopN(t *testing.T) {
	// n <= 0 cae al default (5)
	svc := newTestRecommendService(t, 10)

	items, err := svc.Recommend(context.Background(), RecRequest{Title: "Cowboy Bebop", TopN: 0})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(items) != DefaultTopN {
		t.Errorf("Expected %d results for TopN=0, got %d", DefaultTopN, len(items))
	}

	items, err = svc.Recommend(context.Background(), RecRequest{Title: "Cowboy Bebop", TopN: -3})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(items) != DefaultTopN {
		t.Errorf("Expected %d results for TopN=-3, got %d", DefaultTopN, len(items))
	}
}

func TestRecommendServiceClampsToCatalogSize(t *testing.T) {
	// catálogo de 10: pedir 100 devuelve a lo más catálogo−1 = 9
	svc := newTestRecommendService(t, 10)

	items, err := svc.Recommend(context.Background(), RecRequest{Title: "Cowboy Bebop", TopN: 100})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(items) != 9 {
		t.Errorf("Expected 9 results (catalog size - 1), got %d", len(items))
	}
}

func TestRecommendServiceClampsToMaxTopN(t *testing.T) {
	// catálogo de 60: pedir 100 se recorta primero a MaxTopN = 50
	svc := newTestRecommendService(t, 60)

	items, err := svc.Recommend(context.Background(), RecRequest{Title: "Cowboy Bebop", TopN: 100})
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(items) != MaxTopN {
		t.Errorf("Expected %d results for TopN=100, got %d", MaxTopN, len(items))
	}
}

func TestRecommendServiceCacheKey(t *testing.T) {
	// la key va por título en minúsculas + n ya clampeado (Recommend
	// calcula la key después de aplicar los límites)
	key := cacheKey(RecRequest{Title: "Cowboy Bebop", TopN: 5})
	if key != "rec:title:cowboy bebop:n:5" {
		t.Errorf("Unexpected cache key: %s", key)
	}

	// refresh no participa de la key: decide si se lee, no dónde se guarda
	withRefresh := cacheKey(RecRequest{Title: "Cowboy Bebop", TopN: 5, Refresh: true})
	if withRefresh != key {
		t.Errorf("Refresh must not change the cache key: %s vs %s", withRefresh, key)
	}
}
