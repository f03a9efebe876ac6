package siteqa

import "context"

// SeedDiscoverer finds candidate content URLs before traversal begins.
// Seeds improve recall on sites whose internal link graph under-represents
// older content (e.g. paginated blogs with deep archives).
type SeedDiscoverer interface {
	// DiscoverSeeds probes well-known sitemap and feed endpoints resolved
	// against the root URL and returns the normalized union of the URLs
	// they list. Individual sources that are unreachable or malformed are
	// skipped; discovery degrades to an empty result rather than failing.
	DiscoverSeeds(ctx context.Context, rootURL string) ([]string, error)
}

// Feed represents a parsed RSS or Atom feed.
type Feed struct {
	// Entries holds the resolved link (or id fallback) of each feed entry.
	Entries []string

	// Malformed is set when the document was retrieved but could not be
	// parsed as a well-formed feed. Callers typically skip such feeds.
	Malformed bool
}
