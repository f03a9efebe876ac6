package http

import (
	"context"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/siteqa"
)

// feedPaths are the well-known feed locations probed in order.
var feedPaths = []string{
	"/feed",
	"/rss",
	"/rss.xml",
	"/index.xml",
	"/atom.xml",
	"/blog/rss.xml",
	"/blog/index.xml",
}

// FeedService discovers page URLs from a site's RSS and Atom feeds.
type FeedService struct {
	fetcher *Fetcher
}

// NewFeedService creates a FeedService backed by the given fetcher.
// If fetcher is nil, a default one is used.
func NewFeedService(fetcher *Fetcher) *FeedService {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &FeedService{fetcher: fetcher}
}

// DiscoverURLs probes the well-known feed endpoints resolved against baseURL
// and returns the entry URLs of every feed that parses. Unreachable and
// malformed endpoints are skipped. The result is empty (never nil) when no
// feed yields entries.
func (s *FeedService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}

	urls := []string{}
	seen := make(map[string]bool)
	for _, path := range feedPaths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		target := base.ResolveReference(&url.URL{Path: path}).String()
		resp, err := s.fetcher.Fetch(ctx, target)
		if err != nil {
			continue
		}
		feed := ParseFeed(resp.Body)
		if feed.Malformed {
			continue
		}
		for _, u := range feed.Entries {
			if !seen[u] {
				seen[u] = true
				urls = append(urls, u)
			}
		}
	}
	return urls, nil
}

// ParseFeed parses an RSS or Atom document. Entry URLs come from <item>
// <link> (falling back to <guid>) for RSS and <entry> <link href> (falling
// back to <id>) for Atom. Documents that are not well-formed XML or whose
// root is neither rss nor feed are returned with Malformed set.
func ParseFeed(body string) *siteqa.Feed {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(body); err != nil {
		return &siteqa.Feed{Malformed: true}
	}
	root := doc.Root()
	if root == nil {
		return &siteqa.Feed{Malformed: true}
	}

	switch root.Tag {
	case "rss", "RDF":
		return parseRSS(root)
	case "feed":
		return parseAtom(root)
	default:
		return &siteqa.Feed{Malformed: true}
	}
}

func parseRSS(root *etree.Element) *siteqa.Feed {
	feed := &siteqa.Feed{}
	for _, item := range root.FindElements("//item") {
		link := elementText(item, "link")
		if link == "" {
			link = elementText(item, "guid")
		}
		if link != "" {
			feed.Entries = append(feed.Entries, link)
		}
	}
	return feed
}

func parseAtom(root *etree.Element) *siteqa.Feed {
	feed := &siteqa.Feed{}
	for _, entry := range root.FindElements("//entry") {
		link := atomEntryLink(entry)
		if link == "" {
			link = elementText(entry, "id")
		}
		if link != "" {
			feed.Entries = append(feed.Entries, link)
		}
	}
	return feed
}

// atomEntryLink picks the entry's link: the rel="alternate" (or rel-less)
// link wins over enclosure and self links.
func atomEntryLink(entry *etree.Element) string {
	var fallback string
	for _, link := range entry.SelectElements("link") {
		href := strings.TrimSpace(link.SelectAttrValue("href", ""))
		if href == "" {
			continue
		}
		rel := link.SelectAttrValue("rel", "")
		if rel == "" || rel == "alternate" {
			return href
		}
		if fallback == "" {
			fallback = href
		}
	}
	return fallback
}

func elementText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
