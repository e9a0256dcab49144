package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/atomdellow/gamingblocksite/internal/metrics"
	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/policy"
	"github.com/atomdellow/gamingblocksite/internal/validator"
)

// CommentService manages comments under posts.
type CommentService struct {
	db       *gorm.DB
	validate *validator.Validator
}

func NewCommentService(db *gorm.DB, v *validator.Validator) *CommentService {
	return &CommentService{db: db, validate: v}
}

// visiblePost loads a post and applies the read-visibility policy. Invisible
// posts are reported as not found.
func (s *CommentService) visiblePost(ctx context.Context, caller policy.Caller, postID uint) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanViewPost(caller, &post) {
		return nil, ErrNotFound
	}
	return &post, nil
}

// ListForPost returns a post's comments, newest first, each with its user.
func (s *CommentService) ListForPost(ctx context.Context, caller policy.Caller, postID uint) ([]models.Comment, error) {
	post, err := s.visiblePost(ctx, caller, postID)
	if err != nil {
		return nil, err
	}

	var comments []models.Comment
	err = s.db.WithContext(ctx).
		Where("post_id = ?", post.ID).
		Preload("User").
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// Add creates a comment on a post the caller can see.
func (s *CommentService) Add(ctx context.Context, caller policy.Caller, postID uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	if caller.IsAnonymous() {
		return nil, ErrForbidden
	}
	if err := s.validate.ValidateComment(req); err != nil {
		return nil, err
	}

	post, err := s.visiblePost(ctx, caller, postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		Content: strings.TrimSpace(req.Content),
		PostID:  post.ID,
		UserID:  caller.ID,
	}

	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}

	metrics.CommentsCreated.Inc()
	log.Info().Uint("comment_id", comment.ID).Uint("post_id", post.ID).Msg("comment created")

	if err := s.db.WithContext(ctx).Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update rewrites a comment's content. Author-or-admin only; existence is
// checked before authorization.
func (s *CommentService) Update(ctx context.Context, caller policy.Caller, id uint, req *models.CreateCommentRequest) (*models.Comment, error) {
	if err := s.validate.ValidateComment(req); err != nil {
		return nil, err
	}

	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !policy.CanModifyComment(caller, &comment) {
		return nil, ErrForbidden
	}

	comment.Content = strings.TrimSpace(req.Content)
	if err := s.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("User").First(&comment, comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment. Author-or-admin only.
func (s *CommentService) Delete(ctx context.Context, caller policy.Caller, id uint) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !policy.CanModifyComment(caller, &comment) {
		return ErrForbidden
	}

	return s.db.WithContext(ctx).Delete(&comment).Error
}
