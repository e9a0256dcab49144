package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Title         string         `gorm:"size:100;not null" json:"title"`
	Slug          string         `gorm:"size:110;index" json:"slug"`
	Content       string         `gorm:"not null" json:"content"`
	FeaturedImage *string        `json:"featured_image"`
	Published     bool           `gorm:"default:true" json:"published"`
	AuthorID      uint           `gorm:"not null;index" json:"author_id"`
	Author        User           `gorm:"foreignKey:AuthorID" json:"author"`
	CategoryID    uint           `gorm:"not null;index" json:"category_id"`
	Category      Category       `gorm:"foreignKey:CategoryID" json:"category"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	Likes         []PostLike     `gorm:"foreignKey:PostID" json:"likes,omitempty"`
	Comments      []Comment      `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type CreatePostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	FeaturedImage *string  `json:"featured_image"`
	Published     *bool    `json:"published"`
	CategoryID    uint     `json:"category_id"`
	Tags          []string `json:"tags"`
}

type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Content       *string   `json:"content"`
	FeaturedImage *string   `json:"featured_image"`
	Published     *bool     `json:"published"`
	CategoryID    *uint     `json:"category_id"`
	Tags          *[]string `json:"tags"`
}
