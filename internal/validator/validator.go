package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/atomdellow/gamingblocksite/internal/models"
)

// Validator provides validation for incoming request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCreatePost validates a post creation payload.
func (v *Validator) ValidateCreatePost(r *models.CreatePostRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 100).Error("title cannot be more than 100 characters"),
		),
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
		),
		validation.Field(&r.CategoryID,
			validation.Required.Error("category is required"),
		),
	)
}

// ValidateUpdatePost validates a post update payload. Absent fields are
// left untouched by the update, so only the supplied ones are checked.
func (v *Validator) ValidateUpdatePost(r *models.UpdatePostRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.NilOrNotEmpty.Error("title cannot be empty"),
			validation.Length(1, 100).Error("title cannot be more than 100 characters"),
		),
		validation.Field(&r.Content,
			validation.NilOrNotEmpty.Error("content cannot be empty"),
		),
	)
}

// ValidateComment validates a comment payload.
func (v *Validator) ValidateComment(r *models.CreateCommentRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Content,
			validation.Required.Error("comment content is required"),
			validation.Length(1, 500).Error("comment cannot be more than 500 characters"),
		),
	)
}

// ValidateCategory validates a category payload.
func (v *Validator) ValidateCategory(c *models.Category) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 50).Error("name cannot be more than 50 characters"),
		),
		validation.Field(&c.Description,
			validation.Length(0, 500).Error("description cannot be more than 500 characters"),
		),
	)
}

// ValidateRegister validates a registration payload.
func (v *Validator) ValidateRegister(r *models.RegisterRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 50).Error("username must be between 3 and 50 characters"),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 0).Error("password must be at least 6 characters"),
		),
	)
}

// ValidateLogin validates a login payload.
func (v *Validator) ValidateLogin(r *models.LoginRequest) error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required.Error("email is required")),
		validation.Field(&r.Password, validation.Required.Error("password is required")),
	)
}

// IsValidationError reports whether err came from input validation, as
// opposed to a storage or policy failure.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := err.(validation.Errors); ok {
		return true
	}
	if _, ok := err.(validation.Error); ok {
		return true
	}
	return false
}
