package models

import "time"

// BookmarkDoc documento de la colección bookmarks (un título por doc).
type BookmarkDoc struct {
	UserID    int       `json:"userId" bson:"userId"`
	Title     string    `json:"title" bson:"title"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
