package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/atomdellow/gamingblocksite/internal/middleware"
	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// GetPosts returns a page of posts filtered by category, tag and search
func (h *PostHandler) GetPosts(c *gin.Context) {
	caller := middleware.CallerFrom(c)

	params := service.ListPostsParams{
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	}
	if category := queryInt(c, "category"); category > 0 {
		params.CategoryID = uint(category)
	}

	page, err := h.posts.List(c.Request.Context(), caller, params)
	if err != nil {
		respondServiceError(c, err, "Posts not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":        page.Posts,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.Page,
	})
}

// GetPost returns a single post with its comments attached
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	post, err := h.posts.Get(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// CreatePost creates a new post (PROTECTED - requires authentication)
func (h *PostHandler) CreatePost(c *gin.Context) {
	var input models.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), middleware.CallerFrom(c), &input)
	if err != nil {
		respondServiceError(c, err, "Category not found")
		return
	}

	c.JSON(http.StatusCreated, post)
}

// UpdatePost updates an existing post (PROTECTED - author or admin)
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input models.UpdatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.posts.Update(c.Request.Context(), middleware.CallerFrom(c), id, &input)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// DeletePost deletes a post and its comments (PROTECTED - author or admin)
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.posts.Delete(c.Request.Context(), middleware.CallerFrom(c), id); err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

// ToggleLike flips the caller's like on a post (PROTECTED)
func (h *PostHandler) ToggleLike(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.posts.ToggleLike(c.Request.Context(), middleware.CallerFrom(c), id)
	if err != nil {
		respondServiceError(c, err, "Post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"liked":      result.Liked,
		"likesCount": result.LikesCount,
		"data":       result.Likes,
	})
}

func queryInt(c *gin.Context, key string) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return value
}
