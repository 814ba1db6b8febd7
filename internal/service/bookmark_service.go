package service

import (
	"context"
	"fmt"

	"github.com/WahyuuR/RekomendationAnime/internal/models"
	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
	"github.com/WahyuuR/RekomendationAnime/internal/repository"
)

type BookmarkService struct {
	bookmarks *repository.BookmarkRepository
	holder    *recommender.ModelHolder
}

func NewBookmarkService(b *repository.BookmarkRepository, holder *recommender.ModelHolder) *BookmarkService {
	return &BookmarkService{bookmarks: b, holder: holder}
}

// Add guarda un bookmark. El título se valida contra el catálogo
// (case-insensitive) y se guarda con su forma canónica.
func (s *BookmarkService) Add(ctx context.Context, userID int, title string) error {
	model, err := s.holder.Get()
	if err != nil {
		return err
	}

	anime := model.Catalog.GetByTitle(title)
	if anime == nil {
		return fmt.Errorf("anime %q no existe en el catálogo", title)
	}

	return s.bookmarks.Add(ctx, userID, anime.Title)
}

// List devuelve los bookmarks con la metadata completa del catálogo, para
// que la capa de presentación pinte las cards directo.
func (s *BookmarkService) List(ctx context.Context, userID int) ([]models.Anime, error) {
	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}

	docs, err := s.bookmarks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.Anime, 0, len(docs))
	for _, d := range docs {
		if a := model.Catalog.GetByTitle(d.Title); a != nil {
			out = append(out, *a)
		}
	}
	return out, nil
}

// RemoveMany borra varios bookmarks de una vez.
func (s *BookmarkService) RemoveMany(ctx context.Context, userID int, titles []string) (int64, error) {
	return s.bookmarks.RemoveMany(ctx, userID, titles)
}
