package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the urls command.
func (c *UrlsCmd) Run(deps *Dependencies) error {
	crawler := deps.Crawler
	crawler.MaxPages = c.MaxPages
	crawler.Concurrency = c.Concurrency
	crawler.Exclude = c.Exclude
	crawler.Include = c.Include

	urls, err := crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	for _, u := range urls {
		fmt.Fprintln(deps.Stdout, u)
	}

	return nil
}
