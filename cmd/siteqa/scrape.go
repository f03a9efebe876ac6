package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
	"github.com/fwojciec/siteqa/extract"
)

// Run executes the scrape command: crawl the site, extract every page as
// markdown, persist the items, and write the knowledgebase JSON file.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	// Force mode: delete an existing site of the same name first.
	if c.Force {
		existing, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
		if err != nil && siteqa.ErrorCode(err) != siteqa.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
			return err
		}
		if existing != nil {
			if err := deps.Sites.DeleteSite(deps.Ctx, existing.ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
				return err
			}
		}
	}

	site := &siteqa.Site{
		Name:    c.Name,
		RootURL: c.URL,
	}
	if err := deps.Sites.CreateSite(deps.Ctx, site); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added site %q (%s)\n", c.Name, site.ID)

	crawler := deps.Crawler
	crawler.MaxPages = c.MaxPages
	crawler.Concurrency = c.Concurrency
	crawler.Exclude = c.Exclude
	crawler.Include = c.Include

	urls, err := crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
		return err
	}

	pipeline := deps.Pipeline
	if c.Concurrency > 0 {
		pipeline.Concurrency = c.Concurrency
	}

	progress := func(event extract.ProgressEvent) {
		switch event.Type {
		case extract.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
		case extract.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r  [%d/%d] extracted", event.Completed, event.Total)
		case extract.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
		case extract.ProgressFinished:
			if event.Total > 0 {
				fmt.Fprintln(deps.Stdout)
			}
		}
	}

	result, err := pipeline.Run(deps.Ctx, site.ID, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error extracting: %v\n", err)
		return err
	}

	saved := 0
	for _, item := range result.Items {
		if err := deps.Items.CreateItem(deps.Ctx, item); err != nil {
			fmt.Fprintf(deps.Stderr, "  error saving %s: %v\n", item.SourceURL, err)
			continue
		}
		saved++
	}

	output := c.Output
	if output == "" {
		output = c.Name + ".json"
	}
	kb := &siteqa.Knowledgebase{Site: site, Items: result.Items}
	if err := deps.NewWriter(output).WriteKnowledgebase(deps.Ctx, kb); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "  Wrote %s\n", output)

	fmt.Fprintf(deps.Stdout, "  Saved %d items (%s, %s)\n",
		saved, extract.FormatBytes(result.Bytes), extract.FormatTokens(result.Tokens))

	return nil
}
