package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialite-be/internal/models"
	"socialite-be/internal/service"
)

type AuthController struct {
	userService service.UserService
}

func NewAuthController(userService service.UserService) *AuthController {
	return &AuthController{
		userService: userService,
	}
}

// Register handles POST /api/v1/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	user, err := ac.userService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailInUse), errors.Is(err, service.ErrUsernameInUse):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("ERROR: registration failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	// The fresh account is its own viewer, so the token is included.
	export, err := ac.userService.Export(user, true, nil)
	if err != nil {
		log.Printf("ERROR: failed to export user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusCreated, export)
}

// Login handles POST /api/v1/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	user, err := ac.userService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnknownUser), errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			log.Printf("ERROR: login failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		}
		return
	}

	export, err := ac.userService.Export(user, true, nil)
	if err != nil {
		log.Printf("ERROR: failed to export user %d: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, export)
}
