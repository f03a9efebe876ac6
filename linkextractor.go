package siteqa

// LinkExtractor extracts anchor targets from HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns the absolute, normalized URLs
	// referenced by anchor elements. Relative hrefs are resolved against
	// baseURL (the page's own URL, not the crawl root). mailto: and tel:
	// targets are skipped. The result is not deduplicated against any
	// global state; this is a pure function of (html, baseURL).
	ExtractLinks(html string, baseURL string) ([]string, error)
}
