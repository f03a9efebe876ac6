package goquery_test

import (
	"testing"

	"github.com/fwojciec/siteqa"
	siteqagoquery "github.com/fwojciec/siteqa/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	extractor := siteqagoquery.NewLinkExtractor()

	t.Run("resolves relative hrefs against the page URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/docs/intro">Intro</a>
			<a href="guide">Guide</a>
			<a href="../about">About</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/docs/start")
		require.NoError(t, err)

		assert.Equal(t, []string{
			"https://example.com/docs/intro",
			"https://example.com/docs/guide",
			"https://example.com/about",
		}, links)
	})

	t.Run("keeps absolute links including other hosts", func(t *testing.T) {
		t.Parallel()

		html := `<a href="https://other.com/page">External</a>`

		links, err := extractor.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://other.com/page"}, links)
	})

	t.Run("skips non-HTTP targets", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:team@example.com">Email</a>
			<a href="tel:+48123456789">Call</a>
			<a href="javascript:void(0)">JS</a>
			<a href="data:text/plain;base64,aGk=">Data</a>
			<a href="/real">Real</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://example.com/real"}, links)
	})

	t.Run("strips fragments and deduplicates within the document", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/page#top">Top</a>
			<a href="/page#bottom">Bottom</a>
			<a href="/page">Plain</a>
		</body></html>`

		links, err := extractor.ExtractLinks(html, "https://example.com/")
		require.NoError(t, err)

		assert.Equal(t, []string{"https://example.com/page"}, links)
	})

	t.Run("returns no links for a page without anchors", func(t *testing.T) {
		t.Parallel()

		links, err := extractor.ExtractLinks("<html><body><p>text</p></body></html>", "https://example.com/")
		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("rejects invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := extractor.ExtractLinks("<a href='/x'>x</a>", "::bad base::")
		require.Error(t, err)
		assert.Equal(t, siteqa.EINVALID, siteqa.ErrorCode(err))
	})
}
