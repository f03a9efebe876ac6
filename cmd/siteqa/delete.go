package main

import (
	"fmt"

	"github.com/fwojciec/siteqa"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return siteqa.Errorf(siteqa.EINVALID, "use --force to confirm deletion")
	}

	site, err := deps.Sites.FindSiteByName(deps.Ctx, c.Name)
	if err != nil {
		if siteqa.ErrorCode(err) == siteqa.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: site %q not found. Use 'siteqa list' to see available sites.\n", c.Name)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	if err := deps.Sites.DeleteSite(deps.Ctx, site.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteqa.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted site %q\n", site.Name)
	return nil
}
