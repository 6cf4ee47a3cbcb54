package blog

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Article is the JSON-LD structured block embedded in a post page.
// Keywords is either a single delimited string or a list of strings,
// depending on how the post was authored; Tags() normalizes both.
type Article struct {
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	Description   string `json:"description"`
	Keywords      any    `json:"keywords"`
	DatePublished string `json:"datePublished"`
	URL           string `json:"url"`
}

// Tags returns the article keywords as a normalized list.
func (a *Article) Tags() []string {
	switch v := a.Keywords.(type) {
	case string:
		var tags []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				tags = append(tags, part)
			}
		}
		return tags
	case []any:
		var tags []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					tags = append(tags, s)
				}
			}
		}
		return tags
	default:
		return nil
	}
}

// ExtractArticle scans an HTML document for ld+json script blocks and parses
// the first one declaring @type Article. Malformed JSON blocks are skipped,
// never fatal. Returns false when no block matches.
func ExtractArticle(html string) (*Article, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}

	var found *Article
	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var article Article
		if err := json.Unmarshal([]byte(s.Text()), &article); err != nil {
			return true // malformed block, keep scanning
		}
		if article.Type != "Article" {
			return true
		}
		found = &article
		return false
	})

	return found, found != nil
}

// MetaContent returns the content attribute of the named meta tag. The name
// match is case-insensitive.
func MetaContent(html, name string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", false
	}

	var content string
	var ok bool
	doc.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if n, _ := s.Attr("name"); strings.EqualFold(n, name) {
			content, ok = s.Attr("content")
			return false
		}
		return true
	})
	return content, ok
}
