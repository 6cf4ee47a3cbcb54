package search

import (
	"context"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
)

// IndexQuery is one per-index request: which index to hit and how many hits
// to bring back.
type IndexQuery struct {
	Index string
	Hits  int
}

// Client is the search capability port. Implementations return one ordered
// hit list per queried index, keyed by index name, or an error when the
// capability is unreachable as a whole.
type Client interface {
	Search(ctx context.Context, query string, queries []IndexQuery) (map[string][]domain.IndexHit, error)
}
