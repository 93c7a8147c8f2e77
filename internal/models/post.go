package models

import "time"

type Post struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	Content  string `gorm:"type:text" json:"content"`
	AuthorID int    `gorm:"not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID" json:"author"`

	// Cached aggregate of the likes table, maintained in the same
	// transaction as every like/unlike mutation. Never written directly.
	LikeCount int `gorm:"not null;default:0" json:"like_count"`

	Tags []Tag `gorm:"many2many:post_tags" json:"tags"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
