package service

import "errors"

// Error taxonomy surfaced to handlers. Validation failures are returned as
// ozzo validation.Errors and recognised via validator.IsValidationError.
var (
	// ErrNotFound covers both records that do not exist and records the
	// caller is not allowed to know exist.
	ErrNotFound = errors.New("record not found")

	// ErrForbidden means the record exists and is visible but the caller
	// may not mutate it.
	ErrForbidden = errors.New("not authorized to perform this action")

	// ErrDuplicate means a uniqueness rule was violated.
	ErrDuplicate = errors.New("record already exists")

	// ErrCategoryInUse means a category still has posts and cannot be
	// deleted.
	ErrCategoryInUse = errors.New("category has posts and cannot be deleted")
)
