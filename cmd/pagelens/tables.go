package main

import (
	"fmt"

	"github.com/pagelens/pagelens"
)

// Run executes the tables command.
func (c *TablesCmd) Run(deps *Dependencies) error {
	if err := validatePageURL(c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	res, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	tables, err := deps.Tables.ExtractTables(res.Body)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagelens.ErrorMessage(err))
		return err
	}

	if len(tables) == 0 {
		fmt.Fprintln(deps.Stdout, "No tables found on the webpage.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Found %d table(s)\n", len(tables))
	for i, table := range tables {
		cols := 0
		if len(table.Rows) > 0 {
			cols = len(table.Rows[0])
		}
		fmt.Fprintf(deps.Stdout, "\nTable %d (%d rows, %d columns)\n", i+1, len(table.Rows), cols)
		if err := table.WriteCSV(deps.Stdout); err != nil {
			return err
		}

		if c.Export {
			path, err := newExportWriter(c.Out).ExportTable(c.URL, i, &table)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", err)
				return err
			}
			fmt.Fprintf(deps.Stdout, "Exported %s\n", path)
		}
	}

	return nil
}
