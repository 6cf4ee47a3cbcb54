package blog

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"github.com/checkmarkdevtools/system-notes/internal/config"
	"go.uber.org/zap"
)

// Compile-time interface check
var _ URLSource = (*Sitemap)(nil)

// sitemapURLSet mirrors the standard sitemap schema
// (http://www.sitemaps.org/schemas/sitemap/0.9).
type sitemapURLSet struct {
	XMLName xml.Name `xml:"http://www.sitemaps.org/schemas/sitemap/0.9 urlset"`
	URLs    []struct {
		Loc     string `xml:"loc"`
		LastMod string `xml:"lastmod"`
	} `xml:"url"`
}

// Sitemap discovers post URLs from the remote sitemap.
type Sitemap struct {
	url    string
	marker string
	client *http.Client
	logger *zap.Logger
}

// NewSitemap creates a sitemap fetcher with a bounded request timeout.
func NewSitemap(cfg config.BlogConfig, logger *zap.Logger) *Sitemap {
	return &Sitemap{
		url:    cfg.SitemapURL,
		marker: cfg.PathMarker,
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logger: logger,
	}
}

// PostURLs fetches and parses the sitemap and returns the post page URLs in
// document order. Any fetch or parse failure is recoverable: it is logged
// and an empty list is returned, never an error.
func (s *Sitemap) PostURLs(ctx context.Context) []string {
	urls, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("sitemap fetch failed", zap.String("url", s.url), zap.Error(err))
		return nil
	}
	return urls
}

func (s *Sitemap) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sitemap: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch sitemap: unexpected status %d", resp.StatusCode)
	}

	var set sitemapURLSet
	if err := xml.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}

	var urls []string
	for _, entry := range set.URLs {
		loc := strings.TrimSpace(entry.Loc)
		if strings.Contains(loc, s.marker) {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}
