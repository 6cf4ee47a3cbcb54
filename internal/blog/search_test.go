package blog

import (
	"encoding/json"
	"testing"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() []domain.Post {
	return []domain.Post{
		{
			ID:          "blog-sitemap-crawler",
			Title:       "Shipping a Sitemap Crawler",
			Blurb:       "https://crawly.checkmarkdevtools.dev/posts/sitemap-crawler",
			Fact:        "Notes from building the crawler.",
			Tags:        []string{"Go", "crawlers"},
			Category:    domain.CategoryWriting,
			Signal:      3,
			URL:         "https://crawly.checkmarkdevtools.dev/posts/sitemap-crawler",
			PublishedAt: "2024-03-01",
			ReadingTime: "7 min",
		},
		{
			ID:       "blog-lighthouse",
			Title:    "Chasing a Perfect Lighthouse Score",
			Blurb:    "https://crawly.checkmarkdevtools.dev/posts/lighthouse",
			Fact:     "Performance tuning diary.",
			Tags:     []string{"web", "performance"},
			Category: domain.CategoryWriting,
			Signal:   4,
		},
		{
			ID:       "blog-testing",
			Title:    "Testing the Scary Parts",
			Blurb:    "https://crawly.checkmarkdevtools.dev/posts/testing",
			Fact:     "Why the crawler has more tests than code.",
			Tags:     []string{"testing", "go"},
			Category: domain.CategoryWriting,
			Signal:   3,
		},
	}
}

func TestSearchByQuery(t *testing.T) {
	resp := Search(catalog(), "CRAWLER", "", 10)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "blog-sitemap-crawler", resp.Results[0].ID)
	assert.Equal(t, "blog-testing", resp.Results[1].ID)
	assert.Equal(t, "CRAWLER", resp.Query)
}

func TestSearchMatchesTagsToo(t *testing.T) {
	resp := Search(catalog(), "performance", "", 10)
	assert.Equal(t, 1, resp.Total)
}

func TestSearchByTagFilter(t *testing.T) {
	resp := Search(catalog(), "", "GO", 10)

	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "blog-sitemap-crawler", resp.Results[0].ID)
	assert.Equal(t, "blog-testing", resp.Results[1].ID)
}

func TestSearchTotalCountsBeforeTruncation(t *testing.T) {
	resp := Search(catalog(), "", "", 2)

	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Results, 2)
}

func TestSearchNoMatches(t *testing.T) {
	resp := Search(catalog(), "quantum chromodynamics", "", 10)

	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Results)
}

func TestSearchResultsUsePublicShape(t *testing.T) {
	resp := Search(catalog(), "sitemap", "", 10)
	require.Len(t, resp.Results, 1)

	raw, err := json.Marshal(resp.Results[0])
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))

	for _, internal := range []string{"url", "published_date", "publishedAt", "reading_time", "readingTime"} {
		assert.NotContains(t, fields, internal)
	}
	assert.Contains(t, fields, "blurb")
	assert.Contains(t, fields, "signal")
	assert.Contains(t, fields, "category")
}
