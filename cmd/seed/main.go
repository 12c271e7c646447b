package main

import (
	"context"
	"log"

	"github.com/anonto42/blog-posts/backend/internal/fixtures"
	"github.com/anonto42/blog-posts/backend/internal/router"
	"github.com/anonto42/blog-posts/backend/pkg/config"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	repo, err := router.NewPostRepository(db)
	if err != nil {
		log.Fatalf("Failed to open post repository: %v", err)
	}

	created, err := fixtures.CreatePosts(context.Background(), repo, fixtures.SeedPosts)
	if err != nil {
		log.Fatalf("Seeding stopped after %d posts: %v", len(created), err)
	}
	log.Printf("Seeded %d posts.", len(created))
}
