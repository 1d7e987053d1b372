package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/fwojciec/pagechat/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagechat.Converter at compile time.
var _ pagechat.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	t.Run("converts headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		html := `<h1>Title</h1><h2>Subtitle</h2><p>Hello, world!</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "# Title")
		assert.Contains(t, md, "## Subtitle")
		assert.Contains(t, md, "Hello, world!")
	})

	t.Run("converts links", func(t *testing.T) {
		t.Parallel()

		html := `<p>Visit <a href="https://example.com">Example</a> for more info.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[Example](https://example.com)")
	})

	t.Run("resolves relative links against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<p>See <a href="/docs/intro">the intro</a>.</p>`

		conv := htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL("https://example.com"))
		md, err := conv.Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "[the intro](https://example.com/docs/intro)")
	})

	t.Run("converts lists and emphasis", func(t *testing.T) {
		t.Parallel()

		html := `<ul><li>First</li><li>Second</li></ul><p><strong>Bold</strong> and <em>italic</em>.</p>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "- First")
		assert.Contains(t, md, "- Second")
		assert.Contains(t, md, "**Bold**")
		assert.Contains(t, md, "*italic*")
	})

	t.Run("converts tables", func(t *testing.T) {
		t.Parallel()

		html := `<table><thead><tr><th>Plan</th><th>Price</th></tr></thead><tbody><tr><td>Basic</td><td>$5</td></tr></tbody></table>`

		md, err := htmltomarkdown.NewConverter().Convert(html)

		require.NoError(t, err)
		assert.Contains(t, md, "| Plan")
		assert.Contains(t, md, "| Basic")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		_, err := htmltomarkdown.NewConverter().Convert("   \n ")

		require.Error(t, err)
		assert.Equal(t, pagechat.EINVALID, pagechat.ErrorCode(err))
	})

	t.Run("renders cleaned page without boilerplate", func(t *testing.T) {
		t.Parallel()

		raw := []byte(`<html><body>
<header><a href="/">Logo</a></header>
<nav><a href="/pricing">Pricing</a></nav>
<h1>Welcome</h1>
<p>Read the <a href="/guide">guide</a>.</p>
<footer>Copyright</footer>
</body></html>`)

		body, err := goquery.NewExtractor().CleanHTML(raw)
		require.NoError(t, err)

		md, err := htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL("https://example.com")).Convert(body)

		require.NoError(t, err)
		assert.Contains(t, md, "# Welcome")
		assert.Contains(t, md, "[guide](https://example.com/guide)")
		assert.NotContains(t, md, "Logo")
		assert.NotContains(t, md, "Pricing")
		assert.NotContains(t, md, "Copyright")
	})
}
