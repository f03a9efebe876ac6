package siteqa

import (
	"context"
	"strings"
)

// Response holds the relevant parts of an HTTP response for crawling.
type Response struct {
	StatusCode  int
	ContentType string
	Body        string
}

// IsHTML returns true if the response's content type indicates an HTML page.
func (r *Response) IsHTML() bool {
	return strings.Contains(r.ContentType, "text/html")
}

// Fetcher retrieves pages over HTTP.
// Redirects are followed; the per-request timeout is the implementation's.
type Fetcher interface {
	// Fetch issues a GET for the URL and returns the response.
	// Network failures and HTTP status >= 400 are returned as errors
	// (code EUNAVAILABLE for status errors) so callers can treat the
	// URL as unreachable.
	Fetch(ctx context.Context, url string) (*Response, error)

	// Close releases client resources.
	Close() error
}
