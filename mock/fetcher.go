// Package mock provides hand-written mock implementations of the
// pagelens interfaces for testing.
package mock

import (
	"context"

	"github.com/pagelens/pagelens"
)

var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagelens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagelens.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagelens.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

var _ pagelens.Prober = (*Prober)(nil)

// Prober is a mock implementation of pagelens.Prober.
type Prober struct {
	HeadFn func(ctx context.Context, url string) (int64, error)
}

func (p *Prober) Head(ctx context.Context, url string) (int64, error) {
	return p.HeadFn(ctx, url)
}
