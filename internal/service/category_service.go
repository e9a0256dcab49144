package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/atomdellow/gamingblocksite/internal/models"
	"github.com/atomdellow/gamingblocksite/internal/policy"
	"github.com/atomdellow/gamingblocksite/internal/slug"
	"github.com/atomdellow/gamingblocksite/internal/validator"
)

// CategoryService manages the admin-curated category collection.
type CategoryService struct {
	db       *gorm.DB
	validate *validator.Validator
}

func NewCategoryService(db *gorm.DB, v *validator.Validator) *CategoryService {
	return &CategoryService{db: db, validate: v}
}

// List returns all categories, alphabetically.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Get returns one category.
func (s *CategoryService) Get(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}

// Create adds a category. Admin only; the slug is derived from the name.
func (s *CategoryService) Create(ctx context.Context, caller policy.Caller, name, description string) (*models.Category, error) {
	if !policy.CanManageCategories(caller) {
		return nil, ErrForbidden
	}

	category := models.Category{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := s.validate.ValidateCategory(&category); err != nil {
		return nil, err
	}
	category.Slug = slug.Make(category.Name)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Where("name = ?", category.Name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update renames or re-describes a category, recomputing the slug with the
// name in the same write.
func (s *CategoryService) Update(ctx context.Context, caller policy.Caller, id uint, name, description string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !policy.CanManageCategories(caller) {
		return nil, ErrForbidden
	}

	if name != "" {
		category.Name = strings.TrimSpace(name)
		category.Slug = slug.Make(category.Name)
	}
	if description != "" {
		category.Description = strings.TrimSpace(description)
	}
	if err := s.validate.ValidateCategory(&category); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Delete removes a category that no post references.
func (s *CategoryService) Delete(ctx context.Context, caller policy.Caller, id uint) error {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !policy.CanManageCategories(caller) {
		return ErrForbidden
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Post{}).Where("category_id = ?", category.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.db.WithContext(ctx).Delete(&category).Error
}
