package search

import (
	"context"
	"fmt"
	"sort"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"go.uber.org/zap"
)

// indexClass groups indices sharing a hit quota.
type indexClass struct {
	Quota int
}

var (
	projectClass = indexClass{Quota: 2}
	docClass     = indexClass{Quota: 1}

	// indexClasses maps every declared index to its class. Declaration order
	// in indexPriority doubles as the tie-break order when merged hits carry
	// equal scores.
	indexClasses = map[string]indexClass{
		"projects":    projectClass,
		"about":       docClass,
		"system_docs": docClass,
	}

	indexPriority = []string{"projects", "about", "system_docs"}
)

// Indices returns the declared index names in priority order. The tool
// schema constrains the model's index arguments to this set.
func Indices() []string {
	out := make([]string, len(indexPriority))
	copy(out, indexPriority)
	return out
}

// Aggregator fans one query out across the declared indices, caps each
// index's hits by its class quota and merges the survivors into one list
// sorted by descending relevance.
type Aggregator struct {
	client Client
	logger *zap.Logger
}

// NewAggregator creates an aggregator over the given search client.
func NewAggregator(client Client, logger *zap.Logger) *Aggregator {
	return &Aggregator{client: client, logger: logger}
}

// Search runs the multi-index query. Unknown index names are ignored; an
// empty or all-unknown list falls back to the full declared set. The merged
// list is capped only by the sum of per-index quotas.
func (a *Aggregator) Search(ctx context.Context, query string, indices []string) ([]domain.SearchCandidate, error) {
	targets := normalizeIndices(indices)

	queries := make([]IndexQuery, 0, len(targets))
	for _, name := range targets {
		queries = append(queries, IndexQuery{Index: name, Hits: indexClasses[name].Quota})
	}

	byIndex, err := a.client.Search(ctx, query, queries)
	if err != nil {
		a.logger.Warn("multi-index search failed",
			zap.String("query", query),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchUnavailable, err)
	}

	var merged []domain.SearchCandidate
	for _, name := range targets {
		hits := byIndex[name]
		quota := indexClasses[name].Quota
		if len(hits) > quota {
			hits = hits[:quota]
		}
		for _, hit := range hits {
			merged = append(merged, domain.SearchCandidate{
				Index: name,
				Title: hit.Title,
				Score: hit.Score,
				Extra: hit.Fields,
			})
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].Score != merged[j].Score {
			return merged[i].Score > merged[j].Score
		}
		return priorityRank(merged[i].Index) < priorityRank(merged[j].Index)
	})

	return merged, nil
}

func normalizeIndices(requested []string) []string {
	if len(requested) == 0 {
		return Indices()
	}
	seen := make(map[string]bool, len(requested))
	var out []string
	for _, name := range indexPriority {
		for _, req := range requested {
			if req == name && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	if len(out) == 0 {
		return Indices()
	}
	return out
}

func priorityRank(index string) int {
	for i, name := range indexPriority {
		if name == index {
			return i
		}
	}
	return len(indexPriority)
}
