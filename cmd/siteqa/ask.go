package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	site, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
	if err != nil {
		if siteqa.ErrorCode(err) == siteqa.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'siteqa list' to see available sites.\n", c.Name)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	answer, err := deps.Asker.Ask(deps.Ctx, site.ID, c.Question)
	if err != nil {
		if siteqa.ErrorCode(err) == siteqa.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s. Run 'siteqa index %s' first.\n", siteqa.ErrorMessage(err), c.Name)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
