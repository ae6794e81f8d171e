package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/pagelens/pagelens"
	main "github.com/pagelens/pagelens/cmd/pagelens"
	"github.com/pagelens/pagelens/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSEOCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints SEO metrics", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.SEO = &mock.SEOAnalyzer{
			AnalyzeSEOFn: func(_ context.Context, url string) (*pagelens.SEOMetrics, error) {
				return &pagelens.SEOMetrics{
					MetaTags:      map[string]string{"description": "A page", "robots": "noindex"},
					Headings:      map[string][]string{"h1": {"Welcome"}},
					Robots:        "noindex",
					Canonical:     "https://example.com/canonical",
					Language:      "en",
					InternalLinks: 2,
					ExternalLinks: 1,
					NofollowLinks: 1,
					TextHTMLRatio: 25.0,
					WordCount:     120,
				}, nil
			},
		}

		cmd := &main.SEOCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		out := stdout.String()
		assert.Contains(t, out, "Robots:          noindex")
		assert.Contains(t, out, "25.00%")
		assert.Contains(t, out, "2 internal, 1 external, 1 nofollow")
		assert.Contains(t, out, "h1: Welcome")
		assert.Contains(t, out, "meta description = A page")
	})

	t.Run("returns the analyzer error", func(t *testing.T) {
		t.Parallel()

		stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
		deps := newDeps(stdout, stderr)
		deps.SEO = &mock.SEOAnalyzer{
			AnalyzeSEOFn: func(_ context.Context, url string) (*pagelens.SEOMetrics, error) {
				return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		cmd := &main.SEOCmd{URL: "https://example.com"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "503")
	})
}
