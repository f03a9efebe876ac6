package http

import (
	"context"

	"github.com/fwojciec/siteqa"
)

// Ensure SeedService implements siteqa.SeedDiscoverer.
var _ siteqa.SeedDiscoverer = (*SeedService)(nil)

// SeedService combines sitemap and feed discovery into the seed set used to
// prime a crawl.
type SeedService struct {
	sitemaps *SitemapService
	feeds    *FeedService
}

// NewSeedService creates a SeedService whose sitemap and feed probes share
// the given fetcher. If fetcher is nil, a default one is used.
func NewSeedService(fetcher *Fetcher) *SeedService {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &SeedService{
		sitemaps: NewSitemapService(fetcher),
		feeds:    NewFeedService(fetcher),
	}
}

// DiscoverSeeds returns the deduplicated union of sitemap and feed URLs for
// the site. Either source failing outright only shrinks the result; a site
// with neither yields an empty seed set, not an error.
func (s *SeedService) DiscoverSeeds(ctx context.Context, rootURL string) ([]string, error) {
	seeds := []string{}
	seen := make(map[string]bool)

	fromSitemaps, err := s.sitemaps.DiscoverURLs(ctx, rootURL)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}
	for _, u := range fromSitemaps {
		if !seen[u] {
			seen[u] = true
			seeds = append(seeds, u)
		}
	}

	fromFeeds, err := s.feeds.DiscoverURLs(ctx, rootURL)
	if err != nil && ctx.Err() != nil {
		return nil, err
	}
	for _, u := range fromFeeds {
		if !seen[u] {
			seen[u] = true
			seeds = append(seeds, u)
		}
	}

	return seeds, nil
}
