package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/atomdellow/gamingblocksite/internal/metrics"
	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/policy"
	"github.com/atomdellow/gamingblocksite/internal/slug"
	"github.com/atomdellow/gamingblocksite/internal/validator"
)

// PostService owns the post lifecycle: listing, visibility, slug upkeep,
// like toggling and cascading deletion.
type PostService struct {
	db              *gorm.DB
	validate        *validator.Validator
	defaultPageSize int
	maxPageSize     int
}

func NewPostService(db *gorm.DB, v *validator.Validator, defaultPageSize, maxPageSize int) *PostService {
	return &PostService{
		db:              db,
		validate:        v,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListPostsParams carries the list query. Zero values mean "no filter";
// out-of-range page and limit are coerced to defaults.
type ListPostsParams struct {
	Page       int
	Limit      int
	CategoryID uint
	Tag        string
	Search     string
}

// PostPage is one page of results plus the totals the frontend paginates by.
type PostPage struct {
	Posts      []models.Post `json:"data"`
	Total      int64         `json:"total"`
	TotalPages int           `json:"total_pages"`
	Page       int           `json:"current_page"`
}

// List returns the posts visible to the caller, newest first, filtered by
// whichever of category/tag/search are set. Unpublished posts appear only
// for admins and, among their own, for authors.
func (s *PostService) List(ctx context.Context, caller policy.Caller, params ListPostsParams) (*PostPage, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit < 1 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}

	filter := func(db *gorm.DB) *gorm.DB {
		if params.CategoryID != 0 {
			db = db.Where("category_id = ?", params.CategoryID)
		}
		if params.Tag != "" {
			db = db.Where("? = ANY(tags)", params.Tag)
		}
		if params.Search != "" {
			pattern := "%" + params.Search + "%"
			db = db.Where("title ILIKE ? OR content ILIKE ?", pattern, pattern)
		}
		switch {
		case caller.IsAdmin():
			// admins see everything
		case caller.IsAnonymous():
			db = db.Where("published = ?", true)
		default:
			db = db.Where("published = ? OR author_id = ?", true, caller.ID)
		}
		return db
	}

	var total int64
	if err := filter(s.db.WithContext(ctx).Model(&models.Post{})).Count(&total).Error; err != nil {
		return nil, err
	}

	var posts []models.Post
	err := filter(s.db.WithContext(ctx)).
		Preload("Author").
		Preload("Category").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []models.Post{}
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &PostPage{
		Posts:      posts,
		Total:      total,
		TotalPages: totalPages,
		Page:       page,
	}, nil
}

// Get returns one post with its comments (each carrying its user) attached.
// A post the caller may not see is reported as not found, never forbidden,
// so unpublished content stays unobservable.
func (s *PostService) Get(ctx context.Context, caller policy.Caller, id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at DESC")
		}).
		Preload("Comments.User").
		Preload("Likes").
		First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if !policy.CanViewPost(caller, &post) {
		return nil, ErrNotFound
	}

	return &post, nil
}

// Create stores a new post for the caller. The author is always the caller,
// never taken from the payload.
func (s *PostService) Create(ctx context.Context, caller policy.Caller, req *models.CreatePostRequest) (*models.Post, error) {
	if caller.IsAnonymous() {
		return nil, ErrForbidden
	}
	if err := s.validate.ValidateCreatePost(req); err != nil {
		return nil, err
	}

	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	title := strings.TrimSpace(req.Title)
	post := models.Post{
		Title:         title,
		Slug:          slug.Make(title),
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Published:     published,
		AuthorID:      caller.ID,
		CategoryID:    req.CategoryID,
		Tags:          req.Tags,
	}

	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}

	metrics.PostsCreated.Inc()
	log.Info().Uint("post_id", post.ID).Uint("author_id", caller.ID).Msg("post created")

	if err := s.db.WithContext(ctx).Preload("Author").Preload("Category").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Update applies the supplied fields. A title change always recomputes the
// slug in the same write, so the two can never drift apart. Existence is
// checked before authorization, and authorization before any write.
func (s *PostService) Update(ctx context.Context, caller policy.Caller, id uint, req *models.UpdatePostRequest) (*models.Post, error) {
	if err := s.validate.ValidateUpdatePost(req); err != nil {
		return nil, err
	}

	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !policy.CanModifyPost(caller, &post) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		post.Title = title
		post.Slug = slug.Make(title)
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = req.FeaturedImage
	}
	if req.Published != nil {
		post.Published = *req.Published
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.WithContext(ctx).First(&category, *req.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		post.CategoryID = *req.CategoryID
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}

	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Author").Preload("Category").First(&post, post.ID).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete removes the post and all of its comments and likes in one
// transaction. Either everything goes or nothing does; deleting an
// already-deleted post reports not found.
func (s *PostService) Delete(ctx context.Context, caller policy.Caller, id uint) error {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !policy.CanModifyPost(caller, &post) {
		return ErrForbidden
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	if err != nil {
		return err
	}

	metrics.PostsDeleted.Inc()
	log.Info().Uint("post_id", post.ID).Uint("caller_id", caller.ID).Msg("post deleted")
	return nil
}

// LikeResult reports the state after a toggle.
type LikeResult struct {
	Liked      bool   `json:"liked"`
	LikesCount int    `json:"likes_count"`
	Likes      []uint `json:"likes"`
}

// ToggleLike flips the caller's membership in the post's like set. The
// whole read-modify-write runs in one transaction holding a row lock on the
// post, so concurrent toggles on the same post serialize instead of racing.
func (s *PostService) ToggleLike(ctx context.Context, caller policy.Caller, id uint) (*LikeResult, error) {
	if caller.IsAnonymous() {
		return nil, ErrForbidden
	}

	var result LikeResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if !policy.CanViewPost(caller, &post) {
			return ErrNotFound
		}

		res := tx.Where("post_id = ? AND user_id = ?", post.ID, caller.ID).Delete(&models.PostLike{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Not liked yet: the delete removed nothing, so add the like.
			if err := tx.Create(&models.PostLike{PostID: post.ID, UserID: caller.ID}).Error; err != nil {
				return err
			}
			result.Liked = true
		}

		var userIDs []uint
		if err := tx.Model(&models.PostLike{}).
			Where("post_id = ?", post.ID).
			Order("user_id").
			Pluck("user_id", &userIDs).Error; err != nil {
			return err
		}
		result.Likes = userIDs
		result.LikesCount = len(userIDs)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Likes == nil {
		result.Likes = []uint{}
	}

	state := "unliked"
	if result.Liked {
		state = "liked"
	}
	metrics.LikesToggled.WithLabelValues(state).Inc()

	return &result, nil
}
