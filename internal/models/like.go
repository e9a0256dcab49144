package models

import "time"

// PostLike records one user's like on one post. The composite primary key
// makes the like set a set at the schema level: a user can never appear
// twice for the same post.
type PostLike struct {
	PostID    uint      `gorm:"primaryKey;autoIncrement:false" json:"post_id"`
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
