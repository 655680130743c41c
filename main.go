package main

import (
	"log"

	"socialite-be/internal/cache"
	"socialite-be/internal/config"
	"socialite-be/internal/controllers"
	"socialite-be/internal/database"
	"socialite-be/internal/middleware"
	"socialite-be/internal/repository"
	"socialite-be/internal/service"
	"socialite-be/internal/token"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
		cacheClient = nil
	} else {
		log.Println("Connected to Redis cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	followRepo := repository.NewFollowRepository(db)
	postRepo := repository.NewPostRepository(db)

	// Initialize token generator
	tokenGenerator := token.NewGenerator(userRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, followRepo, postRepo, tokenGenerator, cacheClient, cfg.BcryptCost)
	followService := service.NewFollowService(followRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(userService)
	userController := controllers.NewUserController(userService)
	followController := controllers.NewFollowController(followService, userService)
	qrcodeController := controllers.NewQRCodeController(cfg.FrontendURL)

	// Create a Gin router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// API v1 routes group
	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}

		// Self view - requires authentication
		api.GET("/me", middleware.RequireAuth(userService), userController.Me)

		// Public profiles - relationship flags when a viewer is known
		users := api.Group("/users")
		{
			users.GET("/:id", middleware.OptionalAuth(userService), middleware.ResolveUser(userService), userController.GetUser)
			users.GET("/:id/qrcode", middleware.ResolveUser(userService), qrcodeController.GenerateQRCode)

			users.POST("/:id/follow", middleware.RequireAuth(userService), middleware.ResolveUser(userService), followController.Follow)
			users.DELETE("/:id/follow", middleware.RequireAuth(userService), middleware.ResolveUser(userService), followController.Unfollow)
		}
	}

	log.Printf("Server starting on http://localhost:%s", cfg.Port)
	router.Run(":" + cfg.Port)
}
