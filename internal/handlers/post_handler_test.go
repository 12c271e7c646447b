package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anonto42/blog-posts/backend/internal/models"
	"github.com/anonto42/blog-posts/backend/internal/serializers"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPostRepository struct {
	posts []models.Post
	err   error
}

func (s *stubPostRepository) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = uint(len(s.posts) + 1)
	s.posts = append(s.posts, *post)
	return nil
}

func (s *stubPostRepository) GetAllPosts(context.Context) ([]models.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Post{}, s.posts...), nil
}

func newTestEcho(t *testing.T, repo *stubPostRepository, fields ...string) *echo.Echo {
	t.Helper()

	serializer, err := serializers.NewPostSerializer(fields...)
	require.NoError(t, err)

	e := echo.New()
	NewPostHandler(repo, serializer).RegisterPostRoutes(e.Group("/api/v1"))
	return e
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestListPostsRouteIsNamed(t *testing.T) {
	e := newTestEcho(t, &stubPostRepository{})
	assert.Equal(t, "/api/v1/posts/", e.Reverse(RoutePostsAll))
}

func TestListPostsEmpty(t *testing.T) {
	e := newTestEcho(t, &stubPostRepository{})

	rec := get(e, e.Reverse(RoutePostsAll))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListPostsReturnsTitleAndAuthor(t *testing.T) {
	repo := &stubPostRepository{}
	_ = repo.CreatePost(context.Background(), &models.Post{Title: "like glue", Author: "sean paul"})
	_ = repo.CreatePost(context.Background(), &models.Post{Title: "simple song", Author: "konshens"})
	e := newTestEcho(t, repo)

	rec := get(e, e.Reverse(RoutePostsAll))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
	assert.JSONEq(t, `[
		{"title": "like glue", "author": "sean paul"},
		{"title": "simple song", "author": "konshens"}
	]`, rec.Body.String())
}

func TestListPostsWithIDField(t *testing.T) {
	repo := &stubPostRepository{}
	_ = repo.CreatePost(context.Background(), &models.Post{Title: "jam rock", Author: "damien marley"})
	e := newTestEcho(t, repo, "id", "title", "author")

	rec := get(e, e.Reverse(RoutePostsAll))
	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, float64(1), body[0]["id"])
}

func TestListPostsStoreFailure(t *testing.T) {
	e := newTestEcho(t, &stubPostRepository{err: errors.New("connection refused")})

	rec := get(e, e.Reverse(RoutePostsAll))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", HealthCheck)

	rec := get(e, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"blog-api"}`, rec.Body.String())
}
