package pagelens

import (
	"encoding/csv"
	"io"
)

// Table is a rectangular grid of cell strings extracted from an HTML
// table element. The first row is the header row when the table declared
// one. Cell text has embedded newlines replaced with single spaces.
type Table struct {
	Rows [][]string
}

// WriteCSV renders the table as CSV.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// TableExtractor finds table elements in HTML and converts each into a
// Table. A malformed table is skipped silently; it never aborts
// extraction of the remaining tables. Returned tables follow document
// order, and an empty result is a valid outcome.
type TableExtractor interface {
	ExtractTables(html string) ([]Table, error)
}
