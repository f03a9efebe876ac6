package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements siteqa.Extractor at compile time.
var _ siteqa.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>How We Scaled Postgres - Acme Blog</title>
<meta property="og:title" content="How We Scaled Postgres">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>How We Scaled Postgres</h1>
<p>This is the body of the blog post about our database migration.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts article body and drops chrome", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Post</title></head>
<body>
<nav class="site-nav"><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Shipping Faster</h1>
<p>The substantive lesson of this post is that small batches ship faster.</p>
<pre><code>git rebase -i main</code></pre>
</article>
<aside>Related posts sidebar</aside>
<footer>Copyright 2026 Acme Corp</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "small batches ship faster")
		assert.NotContains(t, result.ContentHTML, "site-nav")
		assert.NotContains(t, result.ContentHTML, "Copyright 2026 Acme Corp")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Code Example</title></head>
<body>
<article>
<h1>Code Examples</h1>
<p>Here is a code example:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
</code></pre>
<p>And here is inline code: <code>go run main.go</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		assert.Contains(t, result.ContentHTML, "Hello, World!")
	})

	t.Run("keeps marginal paragraphs rather than dropping content", func(t *testing.T) {
		t.Parallel()

		// Recall over precision: the short closing note must survive
		// extraction alongside the main body.
		html := `<!DOCTYPE html>
<html>
<head><title>Notes</title></head>
<body>
<article>
<h1>Release Notes</h1>
<p>This release focuses on stability improvements across the ingestion
pipeline and fixes several long-standing issues with retry handling.</p>
<p>Thanks to everyone who reported bugs.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "stability improvements")
		assert.Contains(t, result.ContentHTML, "Thanks to everyone")
	})

	t.Run("returns EINVALID for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
