package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageFetcher serves the given body for any URL.
func pageFetcher(body string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*pagelens.FetchResult, error) {
			return &pagelens.FetchResult{URL: url, StatusCode: 200, Body: body, Size: len(body)}, nil
		},
	}
}

func newDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}
}

func TestTablesCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints extracted tables", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = pageFetcher("<table>ignored by mock</table>")
		deps.Tables = &mock.TableExtractor{
			ExtractTablesFn: func(html string) ([]pagelens.Table, error) {
				return []pagelens.Table{
					{Rows: [][]string{{"Name", "Age"}, {"Alice", "30"}, {"Bob", "25"}}},
				}, nil
			},
		}

		cmd := &main.TablesCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Found 1 table(s)")
		assert.Contains(t, out, "Table 1 (3 rows, 2 columns)")
		assert.Contains(t, out, "Alice,30")
	})

	t.Run("reports when the page has no tables", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = pageFetcher("<p>nothing</p>")
		deps.Tables = &mock.TableExtractor{
			ExtractTablesFn: func(html string) ([]pagelens.Table, error) {
				return nil, nil
			},
		}

		cmd := &main.TablesCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No tables found")
	})

	t.Run("exports tables as CSV files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = pageFetcher("<table></table>")
		deps.Tables = &mock.TableExtractor{
			ExtractTablesFn: func(html string) ([]pagelens.Table, error) {
				return []pagelens.Table{{Rows: [][]string{{"a"}}}}, nil
			},
		}

		cmd := &main.TablesCmd{URL: "https://example.com", Export: true, Out: dir}
		err := cmd.Run(deps)

		require.NoError(t, err)
		data, err := os.ReadFile(filepath.Join(dir, "examplecom_table_1.csv"))
		require.NoError(t, err)
		assert.Equal(t, "a\n", string(data))
	})

	t.Run("rejects an invalid URL before fetching", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagelens.FetchResult, error) {
				t.Fatal("fetch should not be called")
				return nil, nil
			},
		}

		cmd := &main.TablesCmd{URL: "not-a-url"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, pagelens.EINVALID, pagelens.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})

	t.Run("returns the fetch error", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagelens.FetchResult, error) {
				return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP 404 Not Found for %s", url)
			},
		}

		cmd := &main.TablesCmd{URL: "https://example.com/missing"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "404")
	})
}
