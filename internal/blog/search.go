package blog

import (
	"strings"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
)

// Search filters the catalog by free-text query and tag, then truncates to
// limit. Total counts matches before truncation. Limit bounds are enforced
// by the HTTP layer; this function assumes a positive limit.
func Search(posts []domain.Post, query, tag string, limit int) domain.BlogSearchResponse {
	needle := strings.ToLower(strings.TrimSpace(query))
	tag = strings.TrimSpace(tag)

	var matched []domain.Post
	for _, p := range posts {
		if needle != "" && !matchesQuery(p, needle) {
			continue
		}
		if tag != "" && !matchesTag(p, tag) {
			continue
		}
		matched = append(matched, p)
	}

	total := len(matched)
	if limit < len(matched) {
		matched = matched[:limit]
	}

	results := make([]domain.BlogPost, 0, len(matched))
	for _, p := range matched {
		results = append(results, p.Public())
	}

	return domain.BlogSearchResponse{
		Results: results,
		Total:   total,
		Query:   query,
	}
}

// matchesQuery reports whether the lowercase query is a substring of the
// post's title, blurb, fact or any tag.
func matchesQuery(p domain.Post, query string) bool {
	if strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.Blurb), query) ||
		strings.Contains(strings.ToLower(p.Fact), query) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), query) {
			return true
		}
	}
	return false
}

func matchesTag(p domain.Post, tag string) bool {
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), strings.ToLower(tag)) {
			return true
		}
	}
	return false
}
