package extract

import (
	"strings"

	"github.com/fwojciec/siteqa"
)

// blogPathMarkers are URL path fragments that identify blog-style content.
var blogPathMarkers = []string{
	"/blog/",
	"/post/",
	"/posts/",
	"/article",
	"/insights",
	"/news/",
}

// ClassifyURL guesses an item's content type from its URL path. Only blog
// posts get their own label; guides, tutorials, and everything else fall
// into the "other" bucket.
func ClassifyURL(url string) string {
	lower := strings.ToLower(url)
	for _, marker := range blogPathMarkers {
		if strings.Contains(lower, marker) {
			return siteqa.ContentTypeBlog
		}
	}
	return siteqa.ContentTypeOther
}
