package recommender

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/WahyuuR/RekomendationAnime/internal/catalog"
	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

func buildTestModel(t *testing.T, animes []models.Anime) *Model {
	t.Helper()
	return BuildModel(catalog.New(animes))
}

func TestRecommendEndToEnd(t *testing.T) {
	// A y B tienen sinopsis idéntica, C no comparte ningún término:
	// recommend("A", topN=2) debe devolver [B 1.0, C 0.0]
	model := buildTestModel(t, []models.Anime{
		{Title: "A", SynopsisClean: "space robots fighting"},
		{Title: "B", SynopsisClean: "space robots fighting"},
		{Title: "C", SynopsisClean: "cooking competition show"},
	})

	recs, err := model.Recommend("A", 2)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(recs))
	}
	if recs[0].Title != "B" || math.Abs(recs[0].Similarity-1) > 1e-9 {
		t.Errorf("Expected (B, 1.0) first, got (%s, %v)", recs[0].Title, recs[0].Similarity)
	}
	if recs[1].Title != "C" || recs[1].Similarity != 0 {
		t.Errorf("Expected (C, 0.0) second, got (%s, %v)", recs[1].Title, recs[1].Similarity)
	}
}

func TestRecommendCaseInsensitiveLookup(t *testing.T) {
	model := buildTestModel(t, []models.Anime{
		{Title: "Cowboy Bebop", SynopsisClean: "space bounty hunters"},
		{Title: "Trigun", SynopsisClean: "desert bounty hunters"},
	})

	recs, err := model.Recommend("cowboy bebop", 1)
	if err != nil {
		t.Fatalf("Case-insensitive lookup failed: %v", err)
	}
	if recs[0].Title != "Trigun" {
		t.Errorf("Expected Trigun, got %s", recs[0].Title)
	}
}

func TestRecommendNotFound(t *testing.T) {
	model := buildTestModel(t, []models.Anime{
		{Title: "A", SynopsisClean: "space robots"},
		{Title: "B", SynopsisClean: "cooking show"},
	})

	_, err := model.Recommend("Nonexistent Title XYZ", 5)
	if !errors.Is(err, ErrTitleNotFound) {
		t.Errorf("Expected ErrTitleNotFound, got %v", err)
	}
}

func TestRecommendTopNClamp(t *testing.T) {
	// catálogo con solo 3 candidatos: pedir 5 devuelve 3, sin error
	model := buildTestModel(t, []models.Anime{
		{Title: "A", SynopsisClean: "space robots"},
		{Title: "B", SynopsisClean: "space pirates"},
		{Title: "C", SynopsisClean: "cooking show"},
		{Title: "D", SynopsisClean: "tennis club"},
	})

	recs, err := model.Recommend("A", 5)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	if len(recs) != 3 {
		t.Errorf("Expected 3 results (catalog has only 3 candidates), got %d", len(recs))
	}
}

func TestRecommendTieBreakStability(t *testing.T) {
	// B, C y D empatan en similitud contra A (todos 0): deben salir en
	// el orden original del catálogo
	model := buildTestModel(t, []models.Anime{
		{Title: "A", SynopsisClean: "space robots"},
		{Title: "B", SynopsisClean: "cooking show"},
		{Title: "C", SynopsisClean: "tennis club"},
		{Title: "D", SynopsisClean: "idol band"},
	})

	recs, err := model.Recommend("A", 3)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}

	got := []string{recs[0].Title, recs[1].Title, recs[2].Title}
	want := []string{"B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tie-break must keep catalog order %v, got %v", want, got)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	animes := []models.Anime{
		{Title: "A", SynopsisClean: "space robots fighting evil"},
		{Title: "B", SynopsisClean: "robots fighting in space"},
		{Title: "C", SynopsisClean: "cooking competition show"},
		{Title: "D", SynopsisClean: "space cooking robots"},
	}

	model := buildTestModel(t, animes)
	r1, err1 := model.Recommend("A", 3)
	r2, err2 := model.Recommend("A", 3)
	if err1 != nil || err2 != nil {
		t.Fatalf("Recommend failed: %v / %v", err1, err2)
	}
	if !reflect.DeepEqual(r1, r2) {
		t.Errorf("Two identical calls must return identical rankings")
	}

	// y también entre dos modelos construidos desde cero
	model2 := buildTestModel(t, animes)
	r3, _ := model2.Recommend("A", 3)
	if !reflect.DeepEqual(r1, r3) {
		t.Errorf("Rebuilt model must produce identical rankings")
	}
}

func TestRecommendExcludesQuery(t *testing.T) {
	model := buildTestModel(t, []models.Anime{
		{Title: "A", SynopsisClean: "space robots"},
		{Title: "B", SynopsisClean: "space robots"},
	})

	recs, err := model.Recommend("A", 5)
	if err != nil {
		t.Fatalf("Recommend failed: %v", err)
	}
	for _, rec := range recs {
		if rec.Title == "A" {
			t.Errorf("Query item must not appear in its own recommendations")
		}
	}
}

func TestModelHolderBuildsOnce(t *testing.T) {
	builds := 0
	holder := NewModelHolder(func() (*Model, error) {
		builds++
		return buildTestModel(t, []models.Anime{
			{Title: "A", SynopsisClean: "space robots"},
			{Title: "B", SynopsisClean: "cooking show"},
		}), nil
	})

	m1, err := holder.Get()
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	m2, _ := holder.Get()

	if builds != 1 {
		t.Errorf("Expected exactly 1 build, got %d", builds)
	}
	if m1 != m2 {
		t.Errorf("Get must return the same model instance")
	}

	if _, err := holder.Rebuild(); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}
	if builds != 2 {
		t.Errorf("Rebuild must force a new build, got %d builds", builds)
	}
}

func TestModelHolderBuildError(t *testing.T) {
	wantErr := errors.New("dataset ilegible")
	holder := NewModelHolder(func() (*Model, error) {
		return nil, wantErr
	})

	if _, err := holder.Get(); !errors.Is(err, wantErr) {
		t.Errorf("Expected build error to propagate, got %v", err)
	}
}
