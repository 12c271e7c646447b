package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/blog-posts/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetAllPosts(ctx context.Context) ([]models.Post, error)
}

// GormPostRepository implements PostRepository on top of any GORM dialect (Postgres, SQLite)
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Migrate creates or updates the posts table
func (r *GormPostRepository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Post{}); err != nil {
		return fmt.Errorf("failed to migrate posts: %w", err)
	}
	return nil
}

// CreatePost inserts a post and assigns its ID
func (r *GormPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// GetAllPosts retrieves every post in insertion order
func (r *GormPostRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}
