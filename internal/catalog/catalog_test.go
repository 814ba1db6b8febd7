package catalog

import (
	"testing"

	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

func testCatalog() *Catalog {
	return New([]models.Anime{
		{Title: "Cowboy Bebop", Genres: "Action, Sci-Fi", Score: 8.75},
		{Title: "Naruto", Genres: "Action, Shounen", Score: 7.99},
		{Title: "Yuru Camp", Genres: "Slice of Life", Score: 8.31},
	})
}

func TestIndexOfCaseInsensitive(t *testing.T) {
	cat := testCatalog()

	idx, ok := cat.IndexOf("cowboy bebop")
	if !ok || idx != 0 {
		t.Errorf("Expected index 0, got %d (ok=%v)", idx, ok)
	}
	if _, ok := cat.IndexOf("NARUTO"); !ok {
		t.Error("Uppercase lookup must resolve")
	}
	if _, ok := cat.IndexOf("Bleach"); ok {
		t.Error("Unknown title must not resolve")
	}
}

func TestNewDropsDuplicateTitles(t *testing.T) {
	cat := New([]models.Anime{
		{Title: "Monster", Score: 9.0},
		{Title: "MONSTER", Score: 1.0},
	})

	if cat.Len() != 1 {
		t.Fatalf("Expected 1 item after dedup, got %d", cat.Len())
	}
	// gana la primera fila del dataset
	if a := cat.GetByTitle("monster"); a == nil || a.Score != 9.0 {
		t.Errorf("First occurrence must win, got %+v", a)
	}
}

func TestSearch(t *testing.T) {
	cat := testCatalog()

	byTitle := cat.Search("naru", "", 10, 0)
	if len(byTitle) != 1 || byTitle[0].Title != "Naruto" {
		t.Errorf("Title substring search failed: %+v", byTitle)
	}

	byGenre := cat.Search("", "action", 10, 0)
	if len(byGenre) != 2 {
		t.Errorf("Expected 2 action animes, got %d", len(byGenre))
	}

	paged := cat.Search("", "action", 1, 1)
	if len(paged) != 1 || paged[0].Title != "Naruto" {
		t.Errorf("Offset paging failed: %+v", paged)
	}
}

func TestTop(t *testing.T) {
	cat := testCatalog()

	top := cat.Top(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(top))
	}
	if top[0].Title != "Cowboy Bebop" || top[1].Title != "Yuru Camp" {
		t.Errorf("Top order wrong: %s, %s", top[0].Title, top[1].Title)
	}
}

func TestTopNonPositiveLimit(t *testing.T) {
	cat := testCatalog()

	if got := cat.Top(0); len(got) != 0 {
		t.Errorf("Top(0) must return empty, got %d items", len(got))
	}
	if got := cat.Top(-3); len(got) != 0 {
		t.Errorf("Top(-3) must return empty, got %d items", len(got))
	}
}
