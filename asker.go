package siteqa

import "context"

// Asker provides natural language question answering over a site's content.
type Asker interface {
	// Ask answers a natural language question about a site's knowledgebase.
	// Returns ENOTFOUND if the site has no indexed content.
	Ask(ctx context.Context, siteID string, question string) (string, error)
}
