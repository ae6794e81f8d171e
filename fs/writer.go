// Package fs writes extraction results to disk for the CSV/HTML export
// offered by the CLI.
package fs

import (
	"os"
	"path/filepath"

	"github.com/pagelens/pagelens"
)

// Writer exports tables and raw HTML as files in a base directory.
// Filenames are derived from the source URL's host plus an index.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// ExportTable writes one table as a CSV file and returns the written path.
func (w *Writer) ExportTable(sourceURL string, index int, table *pagelens.Table) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, pagelens.ExportName(sourceURL, index)+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := table.WriteCSV(f); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// ExportHTML writes the page HTML to a file and returns the written path.
func (w *Writer) ExportHTML(sourceURL string, html string) (string, error) {
	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.baseDir, pagelens.PageName(sourceURL)+".html")
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", err
	}
	return path, nil
}
