package main

import (
	"log"

	"github.com/anonto42/blog-posts/backend/internal/router"
	"github.com/anonto42/blog-posts/backend/internal/serializers"
	"github.com/anonto42/blog-posts/backend/pkg/config"
	"github.com/anonto42/blog-posts/backend/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB() // Ensure database connections are closed when main exits

	serializer, err := serializers.NewPostSerializer(cfg.PostFields...)
	if err != nil {
		log.Fatalf("Invalid POST_FIELDS: %v", err)
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	config.SetupMiddleware(e)

	// Setup routes and dependencies
	if _, err := router.SetupRoutes(e, db, serializer); err != nil {
		log.Fatalf("Failed to setup routes: %v", err)
	}

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
