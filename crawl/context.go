package crawl

import (
	"net/url"
	"strings"

	"github.com/fwojciec/siteqa"
	"golang.org/x/net/publicsuffix"
)

// Context is the immutable per-crawl configuration derived from the root URL.
type Context struct {
	// Root is the normalized root URL.
	Root string

	// RootHost is the registrable domain of the root (e.g. "example.com").
	RootHost string

	// AllowedHosts is the set of hostnames considered in-scope: the root's
	// host (including any port), the bare registrable domain, and its www
	// variant.
	AllowedHosts map[string]struct{}
}

// NewContext builds a crawl Context from the root URL.
// The root must be an absolute http(s) URL.
func NewContext(rootURL string) (*Context, error) {
	u, err := url.Parse(rootURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "root URL must be an absolute http(s) URL: %q", rootURL)
	}

	host := strings.ToLower(u.Host)
	rootHost := registrableDomain(u.Hostname())

	return &Context{
		Root:     NormalizeURL(rootURL),
		RootHost: rootHost,
		AllowedHosts: map[string]struct{}{
			host:              {},
			rootHost:          {},
			"www." + rootHost: {},
		},
	}, nil
}

// registrableDomain returns the eTLD+1 of a hostname, falling back to the
// hostname itself when the public suffix list does not apply (localhost,
// IP addresses, single-label hosts).
func registrableDomain(hostname string) string {
	hostname = strings.ToLower(hostname)
	if d, err := publicsuffix.EffectiveTLDPlusOne(hostname); err == nil {
		return d
	}
	return hostname
}

// InScope reports whether a URL belongs to the crawl's target site: its host
// must exactly match one of the allowed hosts, or be a subdomain of the root
// registrable domain. Path-based inclusion/exclusion is a separate concern
// applied by the crawler's pattern filters.
func InScope(rawURL string, ctx *Context) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Host)
	if _, ok := ctx.AllowedHosts[host]; ok {
		return true
	}
	return strings.HasSuffix(strings.ToLower(u.Hostname()), "."+ctx.RootHost)
}
