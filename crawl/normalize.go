package crawl

import (
	"net/url"
	"strings"
)

// NormalizeURL produces the canonical form of a URL used for equality and
// deduplication: the scheme and host are lowercased, the fragment is
// stripped, and an empty path becomes "/". Query strings are kept because
// two URLs differing only by query are distinct pages.
//
// Malformed or scheme-less input is returned unchanged rather than failing.
// A crawl that errors on one bad link must not abort; downstream scope
// checks exclude such strings naturally. NormalizeURL is idempotent.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if u.Path == "" {
		u.Path = "/"
	}

	return u.String()
}
