package models

import "time"

type Tag struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"unique;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
}

type CreateTagRequest struct {
	Name string `json:"name"`
}
