package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/aoyagi/todo-list-api/internal/config"
	"github.com/aoyagi/todo-list-api/internal/database"
	"github.com/aoyagi/todo-list-api/internal/handlers"
	"github.com/aoyagi/todo-list-api/internal/logger"
	"github.com/aoyagi/todo-list-api/internal/middleware"
	"github.com/aoyagi/todo-list-api/internal/repository"
	"github.com/aoyagi/todo-list-api/internal/services"
	"github.com/aoyagi/todo-list-api/internal/token"
)

func main() {
	// Load configuration once; everything downstream receives it explicitly.
	cfg := config.Load()

	logger.Init()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Wire repositories, token maker and services
	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	tokens := token.NewMaker(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(userRepo, tokens, cfg.MinPasswordLength)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	todoHandler := handlers.NewTodoHandler(todoService)

	requireAuth := middleware.RequireAuth(tokens, userRepo)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", handlers.Health)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (register/login public, me protected)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(requireAuth)
		{
			todos.GET("", todoHandler.List)
			todos.POST("", todoHandler.Create)
			todos.GET("/:id", todoHandler.Get)
			todos.PUT("/:id", todoHandler.Update)
			todos.DELETE("/:id", todoHandler.Delete)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("Server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}
