package handlers

import (
	"gorm.io/gorm"

	"github.com/atomdellow/gamingblocksite/internal/config"
	"github.com/atomdellow/gamingblocksite/internal/service"
	"github.com/atomdellow/gamingblocksite/internal/validator"
)

// Handler combines all handler types
type Handler struct {
	Auth     *AuthHandler
	Post     *PostHandler
	Comment  *CommentHandler
	Category *CategoryHandler
}

// NewHandler creates a unified handler with all sub-handlers
func NewHandler(db *gorm.DB, cfg *config.Config) *Handler {
	v := validator.NewValidator()

	return &Handler{
		Auth:     NewAuthHandler(db, v, cfg),
		Post:     NewPostHandler(service.NewPostService(db, v, cfg.DefaultPageSize, cfg.MaxPageSize)),
		Comment:  NewCommentHandler(service.NewCommentService(db, v)),
		Category: NewCategoryHandler(service.NewCategoryService(db, v)),
	}
}
