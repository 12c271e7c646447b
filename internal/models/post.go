package models

// Post represents a blog post. It is stored through GORM (Postgres/SQLite) or MongoDB.
type Post struct {
	ID     uint   `json:"id" gorm:"primaryKey;autoIncrement" bson:"_id"`
	Title  string `json:"title" gorm:"not null" bson:"title" validate:"required"`
	Author string `json:"author" gorm:"not null" bson:"author" validate:"required"`
}

// PostRecord is the plain, transmissible form of a Post
type PostRecord map[string]any
