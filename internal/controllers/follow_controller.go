package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialite-be/internal/middleware"
	"socialite-be/internal/service"
)

type FollowController struct {
	followService service.FollowService
	userService   service.UserService
}

func NewFollowController(followService service.FollowService, userService service.UserService) *FollowController {
	return &FollowController{
		followService: followService,
		userService:   userService,
	}
}

// Follow handles POST /api/v1/users/:id/follow
func (fc *FollowController) Follow(c *gin.Context) {
	fc.setFollow(c, true)
}

// Unfollow handles DELETE /api/v1/users/:id/follow
func (fc *FollowController) Unfollow(c *gin.Context) {
	fc.setFollow(c, false)
}

func (fc *FollowController) setFollow(c *gin.Context, follow bool) {
	actor := middleware.CurrentUser(c)
	if actor == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing credentials"})
		return
	}

	target := middleware.TargetUser(c)
	if target == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown user"})
		return
	}

	if actor.ID == target.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user cannot follow self"})
		return
	}

	if err := fc.followService.SetFollow(follow, actor, target); err != nil {
		if errors.Is(err, service.ErrSelfFollow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user cannot follow self"})
			return
		}
		log.Printf("ERROR: follow mutation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	// Respond with the target re-projected from the actor's view so the
	// client sees the updated counts and flags.
	export, err := fc.userService.Export(target, false, actor)
	if err != nil {
		log.Printf("ERROR: failed to export user %d: %v", target.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, export)
}
