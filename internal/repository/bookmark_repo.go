package repository

import (
	"context"
	"time"

	"github.com/WahyuuR/RekomendationAnime/internal/db"
	"github.com/WahyuuR/RekomendationAnime/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookmarkRepository struct {
	col *mongo.Collection
}

func NewBookmarkRepository() *BookmarkRepository {
	return &BookmarkRepository{col: db.DB().Collection("bookmarks")}
}

// Add guarda un bookmark (upsert: agregar dos veces el mismo título no
// duplica el documento).
func (r *BookmarkRepository) Add(ctx context.Context, userID int, title string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "title": title},
		bson.M{"$setOnInsert": bson.M{
			"userId":    userID,
			"title":     title,
			"createdAt": time.Now(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// ListByUser devuelve los bookmarks de un usuario, más antiguos primero.
func (r *BookmarkRepository) ListByUser(ctx context.Context, userID int) ([]models.BookmarkDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.BookmarkDoc
	for cur.Next(ctx) {
		var b models.BookmarkDoc
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}

// RemoveMany borra varios títulos de una vez y devuelve cuántos se fueron.
func (r *BookmarkRepository) RemoveMany(ctx context.Context, userID int, titles []string) (int64, error) {
	if len(titles) == 0 {
		return 0, nil
	}
	res, err := r.col.DeleteMany(ctx, bson.M{
		"userId": userID,
		"title":  bson.M{"$in": titles},
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
