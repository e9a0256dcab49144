package handlers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	t.Run("detects a unique-constraint error", func(t *testing.T) {
		assert.True(t, isUniqueViolation(&pgconn.PgError{Code: "23505"}))
	})

	t.Run("detects a wrapped unique-constraint error", func(t *testing.T) {
		wrapped := fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})
		assert.True(t, isUniqueViolation(wrapped))
	})

	t.Run("ignores other postgres errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}))
	})

	t.Run("ignores non-postgres errors", func(t *testing.T) {
		assert.False(t, isUniqueViolation(errors.New("connection reset")))
		assert.False(t, isUniqueViolation(nil))
	})
}
