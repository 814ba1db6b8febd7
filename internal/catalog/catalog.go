package catalog

import (
	"log"
	"sort"
	"strings"

	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

// Catalog es el catálogo en memoria, inmutable después de cargarse.
// El índice va por título en minúsculas para permitir búsquedas
// case-insensitive exactas.
type Catalog struct {
	items []models.Anime
	index map[string]int
}

// New construye el catálogo e indexa por título. Si hay títulos duplicados
// (ignorando mayúsculas) se queda con la primera fila y descarta el resto.
func New(items []models.Anime) *Catalog {
	c := &Catalog{
		index: make(map[string]int, len(items)),
	}
	for _, a := range items {
		key := strings.ToLower(a.Title)
		if _, ok := c.index[key]; ok {
			log.Printf("[catalog] título duplicado descartado: %q", a.Title)
			continue
		}
		c.index[key] = len(c.items)
		c.items = append(c.items, a)
	}
	return c
}

// Items devuelve el slice interno; los llamadores no deben mutarlo.
func (c *Catalog) Items() []models.Anime {
	return c.items
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// IndexOf resuelve un título (case-insensitive, match exacto) a su posición.
func (c *Catalog) IndexOf(title string) (int, bool) {
	idx, ok := c.index[strings.ToLower(title)]
	return idx, ok
}

// GetByTitle devuelve la entrada del catálogo para un título, o nil.
func (c *Catalog) GetByTitle(title string) *models.Anime {
	idx, ok := c.IndexOf(title)
	if !ok {
		return nil
	}
	a := c.items[idx]
	return &a
}

// Search filtra por substring de título y/o género, con paginación.
func (c *Catalog) Search(q, genre string, limit, offset int) []models.Anime {
	q = strings.ToLower(q)
	genre = strings.ToLower(genre)

	out := make([]models.Anime, 0, limit)
	skipped := 0
	for _, a := range c.items {
		if q != "" && !strings.Contains(strings.ToLower(a.Title), q) {
			continue
		}
		if genre != "" && !strings.Contains(strings.ToLower(a.Genres), genre) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, a)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// Top devuelve los animes mejor puntuados del catálogo. Un limit <= 0
// devuelve vacío, nunca entra en pánico.
func (c *Catalog) Top(limit int) []models.Anime {
	if limit <= 0 {
		return nil
	}
	out := make([]models.Anime, len(c.items))
	copy(out, c.items)

	// sort estable: a igual score se mantiene el orden del dataset
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
