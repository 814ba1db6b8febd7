package catalog

import (
	"encoding/csv"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/WahyuuR/RekomendationAnime/internal/models"
)

// PlaceholderImageURL se usa cuando el dataset no trae imagen o trae una
// referencia que no es una URL absoluta.
const PlaceholderImageURL = "https://via.placeholder.com/150x200?text=No+Image"

// DefaultGenre se usa cuando la fila no trae géneros.
const DefaultGenre = "Unknown"

// Load lee el dataset CSV y devuelve el catálogo ya limpio. Un dataset
// ilegible es fatal para el arranque (el caller decide cómo abortar);
// una fila con campos faltantes o malformados NO lo es: se rellena con
// los valores por defecto.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abriendo dataset %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerante a filas cortas

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leyendo dataset %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s vacío (sin header)", path)
	}

	// Header → índice de columna. Columnas ausentes quedan en -1 y la
	// extracción cae en el valor por defecto.
	cols := headerIndex(records[0])

	items := make([]models.Anime, 0, len(records)-1)
	for _, row := range records[1:] {
		title := strings.TrimSpace(field(row, cols["title"]))
		if title == "" {
			// sin título no hay clave de lookup, descartamos la fila
			continue
		}
		items = append(items, models.Anime{
			Title:         title,
			Genres:        cleanGenres(field(row, cols["genres"])),
			Score:         cleanScore(field(row, cols["score"])),
			Synopsis:      field(row, cols["synopsis"]),
			SynopsisClean: field(row, cols["synopsis_clean"]),
			ImageURL:      cleanImageURL(field(row, cols["image_url"])),
		})
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("dataset %s sin filas utilizables", path)
	}

	return New(items), nil
}

func headerIndex(header []string) map[string]int {
	cols := map[string]int{
		"title":          -1,
		"genres":         -1,
		"score":          -1,
		"synopsis":       -1,
		"synopsis_clean": -1,
		"image_url":      -1,
	}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := cols[name]; ok {
			cols[name] = i
		}
	}
	return cols
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// cleanScore replica pd.to_numeric(errors='coerce').fillna(0).
func cleanScore(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func cleanGenres(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultGenre
	}
	return raw
}

// cleanImageURL acepta solo URLs absolutas http/https, el resto cae
// al placeholder.
func cleanImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return PlaceholderImageURL
	}
	return raw
}
