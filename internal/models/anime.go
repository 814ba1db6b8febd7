package models

// Anime es una entrada del catálogo, tal como queda después de la limpieza
// del dataset. El título funciona como clave única (lookup case-insensitive).
type Anime struct {
	Title         string  `json:"title"`
	Genres        string  `json:"genres"`
	Score         float64 `json:"score"`
	Synopsis      string  `json:"synopsis,omitempty"`
	SynopsisClean string  `json:"-"`
	ImageURL      string  `json:"imageUrl"`
}

// RecommendedAnime es lo que devolvemos por API: metadata completa + similitud.
type RecommendedAnime struct {
	Anime
	Similarity float64 `json:"similarity"`
}
