package service

import (
	"github.com/WahyuuR/RekomendationAnime/internal/models"
	"github.com/WahyuuR/RekomendationAnime/internal/recommender"
)

// AnimeService expone el catálogo en memoria (lectura solamente).
type AnimeService struct {
	holder *recommender.ModelHolder
}

func NewAnimeService(holder *recommender.ModelHolder) *AnimeService {
	return &AnimeService{holder: holder}
}

func (s *AnimeService) GetByTitle(title string) (*models.Anime, error) {
	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}
	return model.Catalog.GetByTitle(title), nil
}

func (s *AnimeService) Search(q, genre string, limit, offset int) ([]models.Anime, error) {
	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}
	return model.Catalog.Search(q, genre, limit, offset), nil
}

func (s *AnimeService) Top(limit int) ([]models.Anime, error) {
	model, err := s.holder.Get()
	if err != nil {
		return nil, err
	}
	return model.Catalog.Top(limit), nil
}
