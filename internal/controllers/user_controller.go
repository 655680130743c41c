package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialite-be/internal/middleware"
	"socialite-be/internal/service"
)

type UserController struct {
	userService service.UserService
}

func NewUserController(userService service.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Me handles GET /api/v1/me - the authenticated user's own profile,
// API token included.
func (uc *UserController) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	export, err := uc.userService.Export(user, true, nil)
	if err != nil {
		log.Printf("ERROR: failed to export user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, export)
}

// GetUser handles GET /api/v1/users/:id - a user's public profile.
// When the caller is authenticated the projection carries the
// relationship flags relative to them.
func (uc *UserController) GetUser(c *gin.Context) {
	target := middleware.TargetUser(c)
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
		return
	}

	requester := middleware.CurrentUser(c)

	export, err := uc.userService.Export(target, false, requester)
	if err != nil {
		log.Printf("ERROR: failed to export user %d: %v", target.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, export)
}
