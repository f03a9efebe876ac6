package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
)

// sitemapPaths are the well-known sitemap locations probed in order.
var sitemapPaths = []string{
	"/sitemap.xml",
	"/sitemap_index.xml",
	"/sitemap/sitemap.xml",
	"/sitemap-index.xml",
}

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService struct {
	fetcher *Fetcher
}

// NewSitemapService creates a SitemapService backed by the given fetcher.
// If fetcher is nil, a default one is used.
func NewSitemapService(fetcher *Fetcher) *SitemapService {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &SitemapService{fetcher: fetcher}
}

// DiscoverURLs probes the well-known sitemap endpoints resolved against
// baseURL and returns every <loc> URL they list. Index sitemaps are followed
// one level deep. Endpoints that are unreachable or not valid XML are
// skipped; the result is empty (never nil) when nothing is found.
func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seen := make(map[string]bool)
	for _, path := range sitemapPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := base.ResolveReference(&url.URL{Path: path}).String()
		for _, u := range s.fetchSitemap(ctx, target, true) {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}
	return urls, nil
}

// fetchSitemap retrieves and parses a single sitemap document. A
// <sitemapindex> root is followed when followIndex is set; nested indexes
// are not recursed into. Fetch and parse failures yield an empty result.
func (s *SitemapService) fetchSitemap(ctx context.Context, sitemapURL string, followIndex bool) []string {
	resp, err := s.fetcher.Fetch(ctx, sitemapURL)
	if err != nil {
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromString(resp.Body); err != nil {
		return nil
	}
	root := doc.Root()
	if root == nil {
		return nil
	}

	if root.Tag == "sitemapindex" && followIndex {
		var urls []string
		for _, loc := range root.FindElements("//loc") {
			child := strings.TrimSpace(loc.Text())
			if child == "" {
				continue
			}
			urls = append(urls, s.fetchSitemap(ctx, child, false)...)
		}
		return urls
	}

	var urls []string
	for _, loc := range root.FindElements("//loc") {
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}
