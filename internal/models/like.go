package models

import "time"

// Like records one user liking one post. The composite unique index is what
// makes concurrent double-likes lose cleanly at the database.
type Like struct {
	ID     int  `gorm:"primaryKey" json:"id"`
	UserID int  `gorm:"not null;uniqueIndex:idx_likes_user_post" json:"user_id"`
	PostID int  `gorm:"not null;uniqueIndex:idx_likes_user_post;index" json:"post_id"`
	User   User `gorm:"foreignKey:UserID" json:"user"`

	CreatedAt time.Time `json:"created_at"`
}
