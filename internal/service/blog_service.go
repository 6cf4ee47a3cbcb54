package service

import (
	"context"

	"github.com/checkmarkdevtools/system-notes/internal/blog"
	"github.com/checkmarkdevtools/system-notes/internal/domain"
)

// Blog search limits. Out-of-range values are a client error, enforced at
// the HTTP layer.
const (
	BlogSearchMinLimit     = 1
	BlogSearchMaxLimit     = 50
	BlogSearchDefaultLimit = 20
)

// BlogService serves the scraped post catalog through the TTL cache.
type BlogService struct {
	cache *blog.Cache
}

// NewBlogService creates a new blog service
func NewBlogService(cache *blog.Cache) *BlogService {
	return &BlogService{cache: cache}
}

// Search filters the catalog by query and tag, capped at limit results.
func (s *BlogService) Search(ctx context.Context, query, tag string, limit int) domain.BlogSearchResponse {
	return blog.Search(s.cache.Get(ctx), query, tag, limit)
}

// List returns the full catalog in its public shape.
func (s *BlogService) List(ctx context.Context) []domain.BlogPost {
	posts := s.cache.Get(ctx)
	out := make([]domain.BlogPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Public())
	}
	return out
}
