package handlers

import (
	"net/http"

	"github.com/anonto42/blog-posts/backend/internal/repositories"
	"github.com/anonto42/blog-posts/backend/internal/serializers"
	"github.com/labstack/echo/v4"
)

// RoutePostsAll is the name of the list-all route, usable with echo's Reverse
const RoutePostsAll = "posts-all"

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
	serializer     *serializers.PostSerializer
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, serializer *serializers.PostSerializer) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		serializer:     serializer,
	}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET("/posts/", h.ListPosts).Name = RoutePostsAll
}

// ListPosts returns every post, serialized, in store order
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, h.serializer.Many(posts))
}
