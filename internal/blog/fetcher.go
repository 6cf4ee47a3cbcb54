package blog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"go.uber.org/zap"
)

// Compile-time interface check
var _ PostFetcher = (*Fetcher)(nil)

// idPrefix namespaces post identifiers derived from URL slugs.
const idPrefix = "blog-"

// Fetcher turns one post URL into a normalized catalog record.
type Fetcher struct {
	client *http.Client
	logger *zap.Logger
}

// NewFetcher creates a post fetcher with a bounded request timeout.
func NewFetcher(cfg config.BlogConfig, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.FetchTimeout},
		logger: logger,
	}
}

// FetchPost fetches the page and builds a post record from its embedded
// Article block. A page without an Article block is skipped, and any
// network or parse failure degrades to nil so one bad post never aborts a
// catalog rebuild.
func (f *Fetcher) FetchPost(ctx context.Context, pageURL string) *domain.Post {
	body, err := f.fetch(ctx, pageURL)
	if err != nil {
		f.logger.Warn("post fetch failed", zap.String("url", pageURL), zap.Error(err))
		return nil
	}

	article, ok := ExtractArticle(body)
	if !ok {
		f.logger.Debug("post has no article block, skipping", zap.String("url", pageURL))
		return nil
	}

	canonical := article.URL
	if canonical == "" {
		canonical = pageURL
	}

	post := &domain.Post{
		ID:          idPrefix + slug(pageURL),
		Title:       article.Headline,
		Blurb:       canonical,
		Fact:        article.Description,
		Tags:        article.Tags(),
		Projects:    nil,
		Category:    domain.CategoryWriting,
		Signal:      domain.DefaultSignal,
		URL:         canonical,
		PublishedAt: article.DatePublished,
	}

	if rt, ok := MetaContent(body, "reading-time"); ok {
		post.ReadingTime = rt
	}

	return post
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch post: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read post body: %w", err)
	}
	return string(body), nil
}

// slug extracts the final path segment of a post URL.
func slug(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	path := pageURL
	if err == nil {
		path = parsed.Path
	}
	path = strings.TrimRight(path, "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
