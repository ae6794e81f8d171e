package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pagelens/pagelens"
	"github.com/pagelens/pagelens/mock"
	pagelensslog "github.com/pagelens/pagelens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs URL, status, and size on success", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagelens.FetchResult, error) {
				return &pagelens.FetchResult{URL: url, StatusCode: 200, Body: "hello", Size: 5}, nil
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		fetcher := pagelensslog.NewLoggingFetcher(next, logger)

		res, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.NoError(t, err)
		assert.Equal(t, "hello", res.Body)

		out := buf.String()
		assert.Contains(t, out, "https://example.com")
		assert.Contains(t, out, "status=200")
		assert.Contains(t, out, "bytes=5")
	})

	t.Run("logs the error on failure and passes it through", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (*pagelens.FetchResult, error) {
				return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP 502 for %s", url)
			},
		}

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		fetcher := pagelensslog.NewLoggingFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com")
		require.Error(t, err)
		assert.Equal(t, pagelens.EUNAVAILABLE, pagelens.ErrorCode(err))
		assert.Contains(t, buf.String(), "502")
	})
}
