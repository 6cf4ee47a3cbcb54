package search

import (
	"context"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v3/algolia/opt"
	algolia "github.com/algolia/algoliasearch-client-go/v3/algolia/search"
	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/checkmarkdevtools/system-notes/internal/domain"
)

// Compile-time interface check
var _ Client = (*AlgoliaClient)(nil)

// multipleQuerier is the slice of the Algolia SDK this adapter needs.
type multipleQuerier interface {
	MultipleQueries(queries []algolia.IndexedQuery, strategy string, opts ...interface{}) (algolia.MultipleQueriesRes, error)
}

// AlgoliaClient adapts the Algolia multi-query API to the Client port.
//
// Algolia does not expose a single relevance number, so the adapter defines
// the scale itself: a record's numeric "signal" field when present, otherwise
// n-i for the i-th of n hits in that index's response. Downstream code treats
// the scale as opaque.
type AlgoliaClient struct {
	client multipleQuerier
}

// NewAlgoliaClient creates a search client for the configured application.
func NewAlgoliaClient(cfg config.AlgoliaConfig) *AlgoliaClient {
	return &AlgoliaClient{client: algolia.NewClient(cfg.AppID, cfg.APIKey)}
}

// Search issues one multi-index query and groups the hits by index.
func (c *AlgoliaClient) Search(ctx context.Context, query string, queries []IndexQuery) (map[string][]domain.IndexHit, error) {
	indexed := make([]algolia.IndexedQuery, 0, len(queries))
	for _, q := range queries {
		indexed = append(indexed, algolia.NewIndexedQuery(
			q.Index,
			opt.Query(query),
			opt.HitsPerPage(q.Hits),
		))
	}

	res, err := c.client.MultipleQueries(indexed, "none", ctx)
	if err != nil {
		return nil, fmt.Errorf("algolia multi-query: %w", err)
	}

	out := make(map[string][]domain.IndexHit, len(queries))
	for i, result := range res.Results {
		if i >= len(queries) {
			break
		}
		index := queries[i].Index
		hits := make([]domain.IndexHit, 0, len(result.Hits))
		for pos, raw := range result.Hits {
			hits = append(hits, domain.IndexHit{
				Title:  hitTitle(raw),
				Score:  hitScore(raw, pos, len(result.Hits)),
				Fields: raw,
			})
		}
		out[index] = hits
	}
	return out, nil
}

func hitTitle(raw map[string]interface{}) string {
	for _, key := range []string{"title", "name", "headline"} {
		if v, ok := raw[key].(string); ok && v != "" {
			return v
		}
	}
	if v, ok := raw["objectID"].(string); ok {
		return v
	}
	return ""
}

func hitScore(raw map[string]interface{}, pos, total int) float64 {
	if v, ok := raw["signal"].(float64); ok {
		return v
	}
	return float64(total - pos)
}
