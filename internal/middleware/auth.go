package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"socialite-be/internal/entities"
	"socialite-be/internal/service"
)

// Context keys for resolved domain objects.
const (
	UserKey       = "user"
	TargetUserKey = "target_user"
)

const bearerPrefix = "Bearer "

// CurrentUser returns the authenticated user attached by RequireAuth
// or OptionalAuth, or nil when none was attached.
func CurrentUser(c *gin.Context) *entities.User {
	if value, exists := c.Get(UserKey); exists {
		if user, ok := value.(*entities.User); ok {
			return user
		}
	}
	return nil
}

// TargetUser returns the user resolved by ResolveUser from the path,
// or nil when none was attached.
func TargetUser(c *gin.Context) *entities.User {
	if value, exists := c.Get(TargetUserKey); exists {
		if user, ok := value.(*entities.User); ok {
			return user
		}
	}
	return nil
}

func resolveBearer(c *gin.Context, users service.UserService) (*entities.User, bool) {
	header := c.GetHeader("Authorization")
	apiToken := strings.TrimPrefix(header, bearerPrefix)
	if apiToken == "" || apiToken == header {
		// No Bearer prefix at all counts as a malformed credential.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		c.Abort()
		return nil, false
	}

	user, err := users.ValidateToken(apiToken)
	if err != nil {
		log.Printf("ERROR: token validation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		c.Abort()
		return nil, false
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		c.Abort()
		return nil, false
	}

	return user, true
}

// RequireAuth resolves the Authorization bearer token and attaches the
// user to the request context, rejecting requests without a valid one.
func RequireAuth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
			c.Abort()
			return
		}

		user, ok := resolveBearer(c, users)
		if !ok {
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

// OptionalAuth behaves like RequireAuth when an Authorization header is
// present, but continues without a user when there is none at all.
func OptionalAuth(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}

		user, ok := resolveBearer(c, users)
		if !ok {
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
