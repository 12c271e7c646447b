// Package serializers maps stored models to the plain records returned by the API.
package serializers

import (
	"fmt"
	"strings"

	"github.com/anonto42/blog-posts/backend/internal/models"
)

const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldAuthor = "author"
)

// DefaultPostFields is the field set used when none is configured.
var DefaultPostFields = []string{FieldTitle, FieldAuthor}

var postFieldGetters = map[string]func(models.Post) any{
	FieldID:     func(p models.Post) any { return p.ID },
	FieldTitle:  func(p models.Post) any { return p.Title },
	FieldAuthor: func(p models.Post) any { return p.Author },
}

// PostSerializer turns posts into PostRecords holding exactly the configured fields.
type PostSerializer struct {
	fields []string
}

// NewPostSerializer returns a serializer for the given fields, or DefaultPostFields when none are given.
func NewPostSerializer(fields ...string) (*PostSerializer, error) {
	if len(fields) == 0 {
		fields = DefaultPostFields
	}

	seen := make(map[string]bool, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.ToLower(strings.TrimSpace(f))
		if _, ok := postFieldGetters[f]; !ok {
			return nil, fmt.Errorf("unknown post field %q", f)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return &PostSerializer{fields: out}, nil
}

// Fields returns a copy of the configured field names.
func (s *PostSerializer) Fields() []string {
	return append([]string(nil), s.fields...)
}

// Serialize maps a single post.
func (s *PostSerializer) Serialize(post models.Post) models.PostRecord {
	record := make(models.PostRecord, len(s.fields))
	for _, f := range s.fields {
		record[f] = postFieldGetters[f](post)
	}
	return record
}

// Many maps posts in order. The result is never nil.
func (s *PostSerializer) Many(posts []models.Post) []models.PostRecord {
	records := make([]models.PostRecord, 0, len(posts))
	for _, p := range posts {
		records = append(records, s.Serialize(p))
	}
	return records
}
