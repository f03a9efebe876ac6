package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractTitle returns the document's <title> text, falling back to the
// first <h1> when the title element is missing or empty. Returns "" when
// neither is present or the HTML cannot be parsed.
func ExtractTitle(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}
