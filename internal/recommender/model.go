package recommender

import (
	"log"
	"sync"
	"time"

	"github.com/WahyuuR/RekomendationAnime/internal/catalog"
	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

// Model agrupa los artefactos derivados del catálogo: vocabulario,
// vectores TF-IDF y matriz de similitud. Una vez construido es de solo
// lectura; si el catálogo cambia se reconstruye completo (no hay update
// incremental).
type Model struct {
	Catalog *catalog.Catalog
	Vocab   []string
	Vectors [][]float64
	Matrix  [][]float64
	BuiltAt time.Time
}

// BuildModel vectoriza todas las sinopsis y precalcula la matriz de
// similitud todos-contra-todos.
func BuildModel(cat *catalog.Catalog) *Model {
	start := time.Now()

	items := cat.Items()
	docs := make([]string, len(items))
	for i, a := range items {
		docs[i] = a.SynopsisClean
	}

	vectors, vocab := BuildVectors(docs)
	matrix := BuildSimilarityMatrix(vectors)

	log.Printf("[recommender] modelo construido: %d animes, %d términos, %s",
		len(items), len(vocab), time.Since(start))

	return &Model{
		Catalog: cat,
		Vocab:   vocab,
		Vectors: vectors,
		Matrix:  matrix,
		BuiltAt: time.Now(),
	}
}

// Recommend es el atajo sobre el modelo ya construido.
func (m *Model) Recommend(queryTitle string, topN int) ([]models.RecommendedAnime, error) {
	return Recommend(queryTitle, m.Matrix, m.Catalog, topN)
}

// ModelHolder es la puerta build-once/read-many: el primer Get construye
// el modelo (una sola vez aunque lleguen requests concurrentes) y las
// lecturas posteriores no toman locks de escritura. Rebuild reemplaza el
// modelo completo de forma atómica (mantenimiento admin).
type ModelHolder struct {
	mu    sync.RWMutex
	build func() (*Model, error)
	model *Model
}

// NewModelHolder recibe la función de build (cargar catálogo + construir
// modelo) y la difiere hasta el primer uso.
func NewModelHolder(build func() (*Model, error)) *ModelHolder {
	return &ModelHolder{build: build}
}

// Get devuelve el modelo, construyéndolo la primera vez.
func (h *ModelHolder) Get() (*Model, error) {
	h.mu.RLock()
	m := h.model
	h.mu.RUnlock()
	if m != nil {
		return m, nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	// otro goroutine pudo construirlo mientras esperábamos el lock
	if h.model != nil {
		return h.model, nil
	}

	m, err := h.build()
	if err != nil {
		return nil, err
	}
	h.model = m
	return m, nil
}

// Rebuild fuerza una reconstrucción completa y la publica atómicamente.
func (h *ModelHolder) Rebuild() (*Model, error) {
	m, err := h.build()
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.model = m
	h.mu.Unlock()
	return m, nil
}
