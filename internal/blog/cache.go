package blog

import (
	"context"
	"sync"
	"time"

	"github.com/checkmarkdevtools/system-notes/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// URLSource discovers the post URLs to crawl.
type URLSource interface {
	PostURLs(ctx context.Context) []string
}

// PostFetcher resolves one post URL to a record, or nil when the post is
// skipped or failed.
type PostFetcher interface {
	FetchPost(ctx context.Context, url string) *domain.Post
}

// Cache holds the most recently built catalog behind a freshness window.
// A read inside the window serves the stored list untouched; a stale or
// empty cache triggers one full synchronous rebuild before serving.
// Concurrent stale readers share a single rebuild.
type Cache struct {
	source  URLSource
	fetcher PostFetcher
	ttl     time.Duration
	// emptyTTL bounds how long a sitemap outage is served as "no posts"
	// before the next rebuild attempt.
	emptyTTL time.Duration
	logger   *zap.Logger
	group    singleflight.Group

	mu     sync.RWMutex
	posts  []domain.Post
	expiry time.Time
}

// NewCache creates an empty catalog cache.
func NewCache(source URLSource, fetcher PostFetcher, ttl, emptyTTL time.Duration, logger *zap.Logger) *Cache {
	return &Cache{
		source:   source,
		fetcher:  fetcher,
		ttl:      ttl,
		emptyTTL: emptyTTL,
		logger:   logger,
	}
}

// Get returns the cached catalog, rebuilding it first when stale or empty.
func (c *Cache) Get(ctx context.Context) []domain.Post {
	c.mu.RLock()
	if time.Now().Before(c.expiry) {
		posts := c.posts
		c.mu.RUnlock()
		return posts
	}
	c.mu.RUnlock()

	result, _, _ := c.group.Do("rebuild", func() (any, error) {
		// A waiter that raced a just-finished rebuild gets the fresh list.
		c.mu.RLock()
		if time.Now().Before(c.expiry) {
			posts := c.posts
			c.mu.RUnlock()
			return posts, nil
		}
		c.mu.RUnlock()

		return c.rebuild(ctx), nil
	})
	posts, _ := result.([]domain.Post)
	return posts
}

// Invalidate clears the cache. Intended for test isolation; production
// callers rely on the TTL.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.expiry = time.Time{}
	c.mu.Unlock()
}

// rebuild fetches every discovered post concurrently and swaps the stored
// list wholesale. Completion order is irrelevant; the slot-indexed results
// slice keeps the collection race-free without ordering guarantees.
func (c *Cache) rebuild(ctx context.Context) []domain.Post {
	start := time.Now()
	urls := c.source.PostURLs(ctx)

	results := make([]*domain.Post, len(urls))
	var wg sync.WaitGroup
	for i, u := range urls {
		wg.Add(1)
		go func(slot int, postURL string) {
			defer wg.Done()
			results[slot] = c.fetcher.FetchPost(ctx, postURL)
		}(i, u)
	}
	wg.Wait()

	posts := make([]domain.Post, 0, len(urls))
	for _, p := range results {
		if p != nil {
			posts = append(posts, *p)
		}
	}

	ttl := c.ttl
	if len(posts) == 0 {
		ttl = c.emptyTTL
	}

	c.mu.Lock()
	c.posts = posts
	c.expiry = time.Now().Add(ttl)
	c.mu.Unlock()

	c.logger.Info("catalog rebuilt",
		zap.Int("discovered", len(urls)),
		zap.Int("posts", len(posts)),
		zap.Duration("took", time.Since(start)),
	)
	return posts
}
