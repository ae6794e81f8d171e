package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	links, err := deps.Links.ExtractLinks(res.Body, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(links) == 0 {
		fmt.Fprintln(deps.Stdout, "No links found on the webpage.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d link(s)\n", len(links))
	for _, link := range links {
		fmt.Fprintf(deps.Stdout, "%-8s  %s  %s\n", link.Type, link.URL, link.Text)
	}

	return nil
}
