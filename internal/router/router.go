package router

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/blog-posts/backend/internal/handlers"
	"github.com/anonto42/blog-posts/backend/internal/repositories"
	"github.com/anonto42/blog-posts/backend/internal/serializers"
	"github.com/anonto42/blog-posts/backend/pkg/config"
	"github.com/labstack/echo/v4"
)

// NewPostRepository returns the post repository backed by whichever connection db holds
func NewPostRepository(db *config.DB) (repositories.PostRepository, error) {
	switch {
	case db.Gorm != nil:
		repo := repositories.NewGormPostRepository(db.Gorm)
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		log.Println("SQL auto-migrations completed for posts.")
		return repo, nil
	case db.Mongo != nil:
		return repositories.NewMongoPostRepository(db.Mongo), nil
	}
	return nil, errors.New("no database connection configured")
}

// SetupRoutes configures all application routes and injects dependencies.
// It returns the post repository the routes were wired to.
func SetupRoutes(e *echo.Echo, db *config.DB, serializer *serializers.PostSerializer) (repositories.PostRepository, error) {
	postRepo, err := NewPostRepository(db)
	if err != nil {
		return nil, err
	}

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"message": "Hello, World!"})
	})

	api := e.Group("/api/v1")

	postHandler := handlers.NewPostHandler(postRepo, serializer)
	postHandler.RegisterPostRoutes(api)
	log.Println("Post routes configured.")

	log.Println("All routes configured.")
	return postRepo, nil
}

// Reverse resolves the path of a named route
func Reverse(e *echo.Echo, name string) (string, error) {
	for _, r := range e.Routes() {
		if r.Name == name {
			return e.Reverse(name), nil
		}
	}
	return "", fmt.Errorf("route %q not registered", name)
}
