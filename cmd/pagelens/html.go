package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
	pagelensgoquery "github.com/pagelens/pagelens/goquery"
)

// Run executes the html command.
func (c *HTMLCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	pretty := pagelensgoquery.Prettify(res.Body)
	fmt.Fprintln(deps.Stdout, pretty)

	if c.Export {
		path, err := newExportWriter(c.Out).ExportHTML(c.URL, pretty)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", err)
			return err
		}
		fmt.Fprintf(deps.Stdout, "Exported %s\n", path)
	}

	return nil
}
