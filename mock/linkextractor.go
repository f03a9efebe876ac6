package mock

import "github.com/fwojciec/siteqa"

var _ siteqa.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of siteqa.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}
