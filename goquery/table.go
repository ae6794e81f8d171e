// Package goquery provides goquery-based implementations of the pagelens
// extractors and analyzers. All of them parse the page into a document
// tree with goquery and derive structured records from it; none of them
// mutates the tree, so repeated extraction over the same input yields
// identical output.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelens/pagelens"
)

// Ensure TableExtractor implements pagelens.TableExtractor at compile time.
var _ pagelens.TableExtractor = (*TableExtractor)(nil)

// TableExtractor converts HTML table elements into rectangular grids of
// cell strings.
type TableExtractor struct{}

// NewTableExtractor creates a new TableExtractor.
func NewTableExtractor() *TableExtractor {
	return &TableExtractor{}
}

// ExtractTables locates every table element in document order and parses
// each one independently as a self-contained mini-document. A table that
// fails its tabular parse is skipped silently; the remaining tables are
// still returned. No tables on the page is a valid, empty result.
func (e *TableExtractor) ExtractTables(html string) ([]pagelens.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "failed to parse HTML: %v", err)
	}

	var tables []pagelens.Table
	doc.Find("table").Each(func(_ int, sel *goquery.Selection) {
		outer, err := goquery.OuterHtml(sel)
		if err != nil {
			return
		}
		table, err := parseTable(outer)
		if err != nil {
			return
		}
		tables = append(tables, *table)
	})

	return tables, nil
}

// parseTable parses one table element's HTML in isolation. It returns an
// error when the element yields no usable rows, which the caller treats
// as a skip.
func parseTable(tableHTML string) (*pagelens.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(tableHTML))
	if err != nil {
		return nil, err
	}

	root := doc.Find("table").First()
	if root.Length() == 0 {
		return nil, pagelens.Errorf(pagelens.EINVALID, "no table element")
	}

	var rows [][]string
	width := 0
	root.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		// Nested tables are extracted as their own records by the caller;
		// skip their rows here.
		if tr.Closest("table").Nodes[0] != root.Nodes[0] {
			return
		}
		var cells []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, cleanCell(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}
		if len(cells) > width {
			width = len(cells)
		}
		rows = append(rows, cells)
	})

	if len(rows) == 0 {
		return nil, pagelens.Errorf(pagelens.EINVALID, "table has no rows")
	}

	// Pad ragged rows so the grid is rectangular.
	for i, row := range rows {
		for len(row) < width {
			row = append(row, "")
		}
		rows[i] = row
	}

	return &pagelens.Table{Rows: rows}, nil
}

// cleanCell trims a cell's text and replaces embedded newlines and
// carriage returns with single spaces.
func cleanCell(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.TrimSpace(text)
}
