package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"

	"github.com/atomdellow/gamingblocksite/internal/service"
	"github.com/atomdellow/gamingblocksite/internal/validator"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Not-found, authorization, validation and duplicate failures each get a
// distinct status; anything else is a 500 and gets logged.
func respondServiceError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrCategoryInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case validator.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation. Pre-insert duplicate probes can miss a concurrent writer, so
// the constraint error itself must map to the duplicate response.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// parseID reads a numeric path parameter. A malformed id gets a 400 and the
// handler should return immediately.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}
