package models

import "time"

// RecItem entrada compacta de una recomendación guardada en historial.
type RecItem struct {
	Title      string  `bson:"title"      json:"title"`
	Similarity float64 `bson:"similarity" json:"similarity"`
}

// Recommendation historial de una consulta (colección recommendations).
type Recommendation struct {
	ID               string    `bson:"_id,omitempty"    json:"id"`
	UserID           int       `bson:"userId,omitempty" json:"userId,omitempty"`
	QueryTitle       string    `bson:"queryTitle"       json:"queryTitle"`
	Algo             string    `bson:"algo"             json:"algo"`
	SimilarityMetric string    `bson:"similarityMetric" json:"similarityMetric"`
	TopN             int       `bson:"topN"             json:"topN"`
	Items            []RecItem `bson:"items"            json:"items"`
	CreatedAt        time.Time `bson:"createdAt"        json:"createdAt"`
}
