package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mainTestPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Fixture</title>
<meta name="robots" content="noindex">
<meta name="description" content="A small fixture page">
</head>
<body>
<h1>Fixture</h1>
<table>
<tr><th>Name</th><th>Age</th></tr>
<tr><td>Alice</td><td>30</td></tr>
<tr><td>Bob</td><td>25</td></tr>
</table>
<a href="/about">About</a>
<a href="/contact">Contact</a>
<a href="https://other.example/partner" rel="nofollow">Partner</a>
</body>
</html>`

func newMainTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(mainTestPage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func runMain(t *testing.T, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	err = main.NewMain().Run(context.Background(), args, stdout, stderr)
	return stdout, stderr, err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("tables end to end", func(t *testing.T) {
		t.Parallel()

		srv := newMainTestServer(t)
		stdout, _, err := runMain(t, "tables", srv.URL)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Found 1 table(s)")
		assert.Contains(t, out, "Table 1 (3 rows, 2 columns)")
		assert.Contains(t, out, "Name,Age")
		assert.Contains(t, out, "Alice,30")
		assert.Contains(t, out, "Bob,25")
	})

	t.Run("links end to end", func(t *testing.T) {
		t.Parallel()

		srv := newMainTestServer(t)
		stdout, _, err := runMain(t, "links", srv.URL)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Found 3 link(s)")
		assert.Contains(t, out, srv.URL+"/about")
		assert.Contains(t, out, "https://other.example/partner")
		assert.Contains(t, out, "external")
	})

	t.Run("seo end to end", func(t *testing.T) {
		t.Parallel()

		srv := newMainTestServer(t)
		stdout, _, err := runMain(t, "seo", srv.URL)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Robots:          noindex")
		assert.Contains(t, out, "Language:        en")
		assert.Contains(t, out, "2 internal, 1 external, 1 nofollow")
		assert.Contains(t, out, "h1: Fixture")
		assert.Contains(t, out, "meta description = A small fixture page")
	})

	t.Run("no arguments shows help and errors", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "Usage:")
	})

	t.Run("help exits cleanly", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := runMain(t, "--help")

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "pagelens")
	})

	t.Run("invalid URL is rejected before fetching", func(t *testing.T) {
		t.Parallel()

		_, stderr, err := runMain(t, "tables", "example.com")

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "invalid URL")
	})
}
