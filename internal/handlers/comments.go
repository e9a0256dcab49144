package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atomdellow/gamingblocksite/internal/middleware"
	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/service"
)

type CommentHandler struct {
	comments *service.CommentService
}

func NewCommentHandler(comments *service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// GetComments returns all comments for a post
func (h *CommentHandler) GetComments(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	comments, err := h.comments.ListForPost(c.Request.Context(), middleware.CallerFrom(c), postID)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a post (PROTECTED)
func (h *CommentHandler) CreateComment(c *gin.Context) {
	postID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Add(c.Request.Context(), middleware.CallerFrom(c), postID, &input)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateComment updates a comment (PROTECTED - author or admin)
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.CreateCommentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), middleware.CallerFrom(c), id, &input)
	if err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}

	c.JSON(http.StatusOK, comment)
}

// DeleteComment deletes a comment (PROTECTED - author or admin)
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.comments.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondServiceError(c, err, "Comment not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}
