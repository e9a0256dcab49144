package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/atomdellow/gamingblocksite/internal/models"
)

func strPtr(s string) *string { return &s }

func TestValidateCreatePost(t *testing.T) {
	v := NewValidator()

	valid := &models.CreatePostRequest{
		Title:      "A post",
		Content:    "Some content",
		CategoryID: 1,
	}
	assert.NoError(t, v.ValidateCreatePost(valid))

	assert.Error(t, v.ValidateCreatePost(&models.CreatePostRequest{
		Content: "c", CategoryID: 1,
	}), "missing title")

	assert.Error(t, v.ValidateCreatePost(&models.CreatePostRequest{
		Title: strings.Repeat("x", 101), Content: "c", CategoryID: 1,
	}), "title over 100 characters")

	assert.Error(t, v.ValidateCreatePost(&models.CreatePostRequest{
		Title: "t", CategoryID: 1,
	}), "missing content")

	assert.Error(t, v.ValidateCreatePost(&models.CreatePostRequest{
		Title: "t", Content: "c",
	}), "missing category")
}

func TestValidateUpdatePost(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateUpdatePost(&models.UpdatePostRequest{}),
		"all fields optional on update")
	assert.NoError(t, v.ValidateUpdatePost(&models.UpdatePostRequest{
		Title: strPtr("New title"),
	}))
	assert.Error(t, v.ValidateUpdatePost(&models.UpdatePostRequest{
		Title: strPtr(""),
	}), "explicit empty title rejected")
	assert.Error(t, v.ValidateUpdatePost(&models.UpdatePostRequest{
		Title: strPtr(strings.Repeat("x", 101)),
	}))
	assert.Error(t, v.ValidateUpdatePost(&models.UpdatePostRequest{
		Content: strPtr(""),
	}), "explicit empty content rejected")
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateComment(&models.CreateCommentRequest{Content: "nice"}))
	assert.Error(t, v.ValidateComment(&models.CreateCommentRequest{}))
	assert.Error(t, v.ValidateComment(&models.CreateCommentRequest{
		Content: strings.Repeat("x", 501),
	}))
}

func TestValidateRegister(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateRegister(&models.RegisterRequest{
		Username: "player1", Email: "p1@example.com", Password: "hunter22",
	}))
	assert.Error(t, v.ValidateRegister(&models.RegisterRequest{
		Username: "p", Email: "p1@example.com", Password: "hunter22",
	}), "username too short")
	assert.Error(t, v.ValidateRegister(&models.RegisterRequest{
		Username: "player1", Email: "not-an-email", Password: "hunter22",
	}))
	assert.Error(t, v.ValidateRegister(&models.RegisterRequest{
		Username: "player1", Email: "p1@example.com", Password: "short",
	}))
}

func TestIsValidationError(t *testing.T) {
	v := NewValidator()

	err := v.ValidateComment(&models.CreateCommentRequest{})
	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(assert.AnError))
}
