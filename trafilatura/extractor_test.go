package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/toolscout"
	"github.com/fwojciec/toolscout/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements toolscout.TextExtractor at compile time.
var _ toolscout.TextExtractor = (*trafilatura.Extractor)(nil)

func TestExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := trafilatura.NewExtractor().ExtractText("", "https://example.com")

		require.Error(t, err)
	})

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Getting Started - My Tools</title>
<meta property="og:title" content="Getting Started Guide">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Getting Started</h1>
<p>This is the main content of the tool overview page.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().ExtractText(html, "https://example.com/start")

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content as plain text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/tools">Tools</a></nav>
<article>
<h1>Launch notes</h1>
<p>This is important release content that should be extracted.</p>
<p>It spans several paragraphs describing the new features in detail.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().ExtractText(html, "https://example.com/notes")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "important release content")
		assert.NotContains(t, result.Text, "<p>")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article Title</h1>
<p>Article body with substantive content for readers of this page.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		result, err := trafilatura.NewExtractor().ExtractText(html, "")

		require.NoError(t, err)
		assert.Contains(t, result.Text, "substantive content")
		assert.NotContains(t, result.Text, "Privacy | Terms")
	})
}
