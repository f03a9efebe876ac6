// Package readability implements the fallback content extractor used when
// trafilatura yields nothing usable for a page.
package readability

import (
	"strings"

	"github.com/fwojciec/siteqa"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements siteqa.Extractor at compile time.
var _ siteqa.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*siteqa.ExtractResult, error) {
	if rawHTML == "" {
		return nil, siteqa.Errorf(siteqa.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &siteqa.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
