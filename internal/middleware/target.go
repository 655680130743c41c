package middleware

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"socialite-be/internal/service"
)

// ResolveUser looks up the user named by the :id path parameter and
// attaches it to the request context for downstream handlers.
func ResolveUser(users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
			c.Abort()
			return
		}

		user, err := users.FindByID(id)
		if errors.Is(err, service.ErrUnknownUser) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
			c.Abort()
			return
		}
		if err != nil {
			log.Printf("ERROR: user lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			c.Abort()
			return
		}

		c.Set(TargetUserKey, user)
		c.Next()
	}
}
