package main_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints prettified HTML", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = pageFetcher("<html><body><p>hi</p></body></html>")

		cmd := &main.HTMLCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "<p>")
		assert.Contains(t, out, "hi")
	})

	t.Run("exports prettified HTML to a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.Fetcher = pageFetcher("<html><body><p>hi</p></body></html>")

		cmd := &main.HTMLCmd{URL: "https://example.com", Export: true, Out: dir}
		err := cmd.Run(deps)

		require.NoError(t, err)
		path := filepath.Join(dir, "examplecom.html")
		assert.Contains(t, stdout.String(), "Exported "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "hi")
	})
}
