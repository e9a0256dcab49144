package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/atomdellow/gamingblocksite/internal/policy"
)

const (
	// UserIDKey is the context key for the authenticated user's id
	UserIDKey = "user_id"
	// UserRoleKey is the context key for the authenticated user's role
	UserRoleKey = "user_role"
)

// RequireAuth rejects requests that do not carry a valid bearer token.
// On success the caller's id and role are stored in the gin context.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, err := callerFromToken(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized to access this route"})
			return
		}
		c.Set(UserIDKey, caller.ID)
		c.Set(UserRoleKey, caller.Role)
		c.Next()
	}
}

// OptionalAuth parses a bearer token when present but lets the request
// through as anonymous when it is absent or invalid. Read paths use this so
// authors and admins see their unpublished posts while everyone else does
// not.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if caller, err := callerFromToken(c, secret); err == nil {
			c.Set(UserIDKey, caller.ID)
			c.Set(UserRoleKey, caller.Role)
		}
		c.Next()
	}
}

// CallerFrom rebuilds the policy caller from the gin context. Requests that
// did not authenticate yield the anonymous caller.
func CallerFrom(c *gin.Context) policy.Caller {
	rawID, exists := c.Get(UserIDKey)
	if !exists {
		return policy.Anonymous
	}
	id, ok := rawID.(uint)
	if !ok {
		return policy.Anonymous
	}
	role, _ := c.Get(UserRoleKey)
	roleStr, _ := role.(string)
	return policy.Caller{ID: id, Role: roleStr}
}

func callerFromToken(c *gin.Context, secret []byte) (policy.Caller, error) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return policy.Anonymous, fmt.Errorf("missing bearer token")
	}
	tokenString := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return policy.Anonymous, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return policy.Anonymous, fmt.Errorf("invalid token claims")
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID < 1 {
		return policy.Anonymous, fmt.Errorf("invalid user_id claim")
	}
	role, _ := claims["role"].(string)

	return policy.Caller{ID: uint(rawID), Role: role}, nil
}
