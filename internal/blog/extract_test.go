package blog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articlePage = `<!DOCTYPE html>
<html>
<head>
<meta name="Reading-Time" content="7 min">
<meta name="description" content="page level description">
<script type="application/ld+json">
{"@type": "Article", "headline": "Shipping a Sitemap Crawler",
 "description": "Notes from building the crawler.",
 "keywords": "go, crawlers, sitemaps",
 "datePublished": "2024-03-01",
 "url": "https://crawly.checkmarkdevtools.dev/posts/shipping-a-sitemap-crawler"}
</script>
</head>
<body><h1>Shipping a Sitemap Crawler</h1></body>
</html>`

func TestExtractArticle(t *testing.T) {
	article, ok := ExtractArticle(articlePage)
	require.True(t, ok)
	assert.Equal(t, "Article", article.Type)
	assert.Equal(t, "Shipping a Sitemap Crawler", article.Headline)
	assert.Equal(t, "Notes from building the crawler.", article.Description)
	assert.Equal(t, "2024-03-01", article.DatePublished)
	assert.Equal(t, "https://crawly.checkmarkdevtools.dev/posts/shipping-a-sitemap-crawler", article.URL)
}

func TestExtractArticleNoBlock(t *testing.T) {
	pages := []string{
		"",
		"<html><body>plain page</body></html>",
		`<script type="text/javascript">var x = 1;</script>`,
		"<not even <html",
	}
	for _, page := range pages {
		article, ok := ExtractArticle(page)
		assert.False(t, ok)
		assert.Nil(t, article)
	}
}

func TestExtractArticleSkipsMalformedJSON(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{not json at all</script>
<script type="application/ld+json">{"@type": "Article", "headline": "Second Block Wins"}</script>
</head></html>`

	article, ok := ExtractArticle(page)
	require.True(t, ok)
	assert.Equal(t, "Second Block Wins", article.Headline)
}

func TestExtractArticleSkipsOtherTypes(t *testing.T) {
	page := `<html><head>
<script type="application/ld+json">{"@type": "WebSite", "name": "crawly"}</script>
<script type="application/ld+json">{"@type": "Article", "headline": "The Article"}</script>
</head></html>`

	article, ok := ExtractArticle(page)
	require.True(t, ok)
	assert.Equal(t, "The Article", article.Headline)
}

func TestExtractArticleOnlyWrongTypes(t *testing.T) {
	page := `<script type="application/ld+json">{"@type": "BreadcrumbList"}</script>`

	_, ok := ExtractArticle(page)
	assert.False(t, ok)
}

func TestArticleTagsFromString(t *testing.T) {
	a := &Article{Keywords: "go, crawlers , sitemaps,,"}
	assert.Equal(t, []string{"go", "crawlers", "sitemaps"}, a.Tags())
}

func TestArticleTagsFromList(t *testing.T) {
	a := &Article{Keywords: []any{"go", " crawlers ", 42, ""}}
	assert.Equal(t, []string{"go", "crawlers"}, a.Tags())
}

func TestArticleTagsMissing(t *testing.T) {
	a := &Article{}
	assert.Nil(t, a.Tags())
}

func TestMetaContentCaseInsensitive(t *testing.T) {
	content, ok := MetaContent(articlePage, "reading-time")
	require.True(t, ok)
	assert.Equal(t, "7 min", content)
}

func TestMetaContentAbsent(t *testing.T) {
	_, ok := MetaContent(articlePage, "author")
	assert.False(t, ok)

	_, ok = MetaContent("<html></html>", "reading-time")
	assert.False(t, ok)
}
