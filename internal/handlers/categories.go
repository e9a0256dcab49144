package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/atomdellow/gamingblocksite/internal/middleware"
	"github.com/atomdellow/gamingblocksite/internal/service"
)

type CategoryHandler struct {
	categories *service.CategoryService
}

func NewCategoryHandler(categories *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

type categoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetCategories returns all categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categories.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Categories not found")
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory returns a single category
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	category, err := h.categories.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, category)
}

// CreateCategory creates a category (PROTECTED - admin only)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Create(c.Request.Context(), middleware.CallerFrom(c), input.Name, input.Description)
	if err != nil {
		respondServiceError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusCreated, category)
}

// UpdateCategory updates a category (PROTECTED - admin only)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input categoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := h.categories.Update(c.Request.Context(), middleware.CallerFrom(c), id, input.Name, input.Description)
	if err != nil {
		respondServiceError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes an unused category (PROTECTED - admin only)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.categories.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondServiceError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
