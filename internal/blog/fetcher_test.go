package blog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/checkmarkdevtools/system-notes/internal/config"
	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFetcher() *Fetcher {
	return NewFetcher(config.BlogConfig{FetchTimeout: 2 * time.Second}, zap.NewNop())
}

func servePage(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchPostBuildsRecord(t *testing.T) {
	srv := servePage(t, articlePage)

	post := newTestFetcher().FetchPost(context.Background(), srv.URL+"/posts/shipping-a-sitemap-crawler")
	require.NotNil(t, post)

	assert.Equal(t, "blog-shipping-a-sitemap-crawler", post.ID)
	assert.Equal(t, "Shipping a Sitemap Crawler", post.Title)
	assert.Equal(t, "Notes from building the crawler.", post.Fact)
	assert.Equal(t, []string{"go", "crawlers", "sitemaps"}, post.Tags)
	assert.Equal(t, domain.CategoryWriting, post.Category)
	assert.Equal(t, domain.DefaultSignal, post.Signal)
	assert.Equal(t, "7 min", post.ReadingTime)
	assert.Equal(t, "2024-03-01", post.PublishedAt)

	// Canonical URL comes from the article block, not the fetch URL.
	assert.Equal(t, "https://crawly.checkmarkdevtools.dev/posts/shipping-a-sitemap-crawler", post.URL)
	assert.Equal(t, post.URL, post.Blurb)
}

func TestFetchPostCanonicalFallsBackToFetchURL(t *testing.T) {
	page := `<script type="application/ld+json">{"@type": "Article", "headline": "No URL Field"}</script>`
	srv := servePage(t, page)

	post := newTestFetcher().FetchPost(context.Background(), srv.URL+"/posts/no-url-field/")
	require.NotNil(t, post)
	assert.Equal(t, srv.URL+"/posts/no-url-field/", post.URL)
	assert.Equal(t, "blog-no-url-field", post.ID)
}

func TestFetchPostSkipsPageWithoutArticle(t *testing.T) {
	srv := servePage(t, "<html><body>no structured data</body></html>")

	assert.Nil(t, newTestFetcher().FetchPost(context.Background(), srv.URL+"/posts/plain"))
}

func TestFetchPostNilOnHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Nil(t, newTestFetcher().FetchPost(context.Background(), srv.URL+"/posts/broken"))
}

func TestFetchPostNilOnUnreachableHost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	assert.Nil(t, newTestFetcher().FetchPost(context.Background(), srv.URL+"/posts/gone"))
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"https://example.dev/posts/my-post":   "my-post",
		"https://example.dev/posts/my-post/":  "my-post",
		"https://example.dev/posts/a/b/c":     "c",
		"https://example.dev/posts/p?x=1#top": "p",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug(in), in)
	}
}
