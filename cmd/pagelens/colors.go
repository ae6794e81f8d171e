package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the colors command.
func (c *ColorsCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	colors, err := deps.Colors.ExtractColors(deps.Ctx, res.Body, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(colors) == 0 {
		fmt.Fprintln(deps.Stdout, "No colors found on the webpage.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d color(s)\n", len(colors))
	for _, color := range colors {
		fmt.Fprintf(deps.Stdout, "%-24s  %-4s  %s\n", color.Value, color.Format, color.Source)
	}

	return nil
}
