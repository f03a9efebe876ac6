package crawl_test

import (
	"testing"

	"github.com/fwojciec/siteqa/crawl"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases scheme and host", "HTTPS://Example.COM/Path", "https://example.com/Path"},
		{"preserves path case", "https://example.com/Docs/API", "https://example.com/Docs/API"},
		{"strips fragment", "https://example.com/page#section", "https://example.com/page"},
		{"defaults empty path to slash", "https://example.com", "https://example.com/"},
		{"keeps query string", "https://example.com/search?q=go&page=2", "https://example.com/search?q=go&page=2"},
		{"keeps port", "http://example.com:8080/x", "http://example.com:8080/x"},
		{"passes through relative URL", "/just/a/path", "/just/a/path"},
		{"passes through scheme-less host", "example.com/page", "example.com/page"},
		{"passes through garbage", "::not a url::", "::not a url::"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, crawl.NormalizeURL(tt.in))
		})
	}
}

func TestNormalizeURL_Idempotent(t *testing.T) {
	t.Parallel()

	urls := []string{
		"HTTPS://Example.COM",
		"https://example.com/page#frag",
		"https://example.com/a?b=c",
		"relative/path",
		"::garbage::",
	}

	for _, u := range urls {
		once := crawl.NormalizeURL(u)
		assert.Equal(t, once, crawl.NormalizeURL(once), "normalize should be idempotent for %q", u)
	}
}
