package models

import "time"

type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:50;unique;not null" json:"name"`
	Slug        string `gorm:"size:60;index" json:"slug"`
	Description string `gorm:"size:500" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
