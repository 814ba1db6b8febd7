package recommender

import (
	"errors"
	"sort"

	"github.com/WahyuuR/RekomendationAnime/internal/catalog"
	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

// ErrTitleNotFound indica que el título consultado no existe en el catálogo.
// Es un resultado mostrable al usuario, no un error fatal del request.
var ErrTitleNotFound = errors.New("título no encontrado en el catálogo")

// Recommend resuelve queryTitle contra el catálogo (case-insensitive,
// match exacto), lee su fila de la matriz y devuelve los topN animes más
// similares, excluyendo al propio query.
//
// Orden: similitud descendente con sort estable, así los empates conservan
// el orden original del catálogo. Si hay menos de topN candidatos se
// devuelven todos; el clamping de topN a [1, len-1] es responsabilidad
// del caller (el servicio HTTP lo hace), aquí solo truncamos.
func Recommend(queryTitle string, matrix [][]float64, cat *catalog.Catalog, topN int) ([]models.RecommendedAnime, error) {
	queryIdx, ok := cat.IndexOf(queryTitle)
	if !ok {
		return nil, ErrTitleNotFound
	}

	row := matrix[queryIdx]
	items := cat.Items()

	candidates := make([]models.RecommendedAnime, 0, len(items)-1)
	for i, a := range items {
		if i == queryIdx {
			continue
		}
		candidates = append(candidates, models.RecommendedAnime{
			Anime:      a,
			Similarity: row[i],
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Similarity > candidates[j].Similarity
	})

	if topN < 0 {
		topN = 0
	}
	if topN < len(candidates) {
		candidates = candidates[:topN]
	}
	return candidates, nil
}
