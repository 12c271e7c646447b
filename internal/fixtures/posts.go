// Package fixtures seeds posts for tests and local development.
package fixtures

import (
	"context"

	"github.com/anonto42/blog-posts/backend/internal/models"
	"github.com/anonto42/blog-posts/backend/internal/repositories"
	"github.com/anonto42/blog-posts/backend/validators"
)

// PostSeed is the title/author pair a post is created from
type PostSeed struct {
	Title  string
	Author string
}

// SeedPosts is the reference data set.
var SeedPosts = []PostSeed{
	{Title: "like glue", Author: "sean paul"},
	{Title: "simple song", Author: "konshens"},
	{Title: "love is wicked", Author: "brick and lace"},
	{Title: "jam rock", Author: "damien marley"},
}

var validate = validators.NewValidator()

// CreatePost stores a post unless title or author is empty, in which case it
// returns nil, nil and the repository is never called.
func CreatePost(ctx context.Context, repo repositories.PostRepository, title, author string) (*models.Post, error) {
	post := &models.Post{Title: title, Author: author}
	if err := validate.Validate(post); err != nil {
		return nil, nil
	}
	if err := repo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// CreatePosts creates every seed in order and returns the posts that were stored.
func CreatePosts(ctx context.Context, repo repositories.PostRepository, seeds []PostSeed) ([]models.Post, error) {
	created := make([]models.Post, 0, len(seeds))
	for _, s := range seeds {
		post, err := CreatePost(ctx, repo, s.Title, s.Author)
		if err != nil {
			return created, err
		}
		if post != nil {
			created = append(created, *post)
		}
	}
	return created, nil
}
