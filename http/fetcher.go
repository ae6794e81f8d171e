// Package http provides HTTP-based implementations of pagelens.Fetcher
// and pagelens.Prober for fetching pages and probing sub-resources over
// the network.
package http

import (
	"context"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pagelens/pagelens"
	"golang.org/x/time/rate"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is the fixed desktop-browser user agent sent on every
// GET request.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Ensure Fetcher implements pagelens.Fetcher at compile time.
var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page responses using blocking HTTP GET requests.
// It does not execute JavaScript and is suitable for static pages only.
// By default every request waits on a 1 request/second token bucket as a
// politeness delay towards the target server.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *rate.Limiter
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithLimiter replaces the politeness limiter. Pass nil to disable the
// delay entirely; sub-resource fetchers (stylesheets, image probes) are
// wired this way.
func WithLimiter(l *rate.Limiter) Option {
	return func(f *Fetcher) {
		f.limiter = l
	}
}

// NewFetcher creates a new HTTP-based Fetcher. The default politeness
// limiter starts drained so the very first request also waits.
func NewFetcher(opts ...Option) *Fetcher {
	limiter := rate.NewLimiter(rate.Limit(1), 1)
	limiter.Allow() // drain the initial token

	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		limiter:   limiter,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a single GET against the URL and returns the raw
// response. A network failure, timeout, or non-2xx status is terminal;
// there are no retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagelens.FetchResult, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	begin := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP %d %s for %s", resp.StatusCode, http.StatusText(resp.StatusCode), url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to read body of %s: %v", url, err)
	}
	elapsed := time.Since(begin)

	return &pagelens.FetchResult{
		URL:         url,
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		Body:        string(body),
		Size:        len(body),
		Encoding:    charsetOf(resp.Header.Get("Content-Type")),
		Elapsed:     elapsed,
		ContentHash: xxhash.Sum64(body),
	}, nil
}

// charsetOf extracts the charset parameter from a Content-Type value.
func charsetOf(contentType string) string {
	if contentType == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return params["charset"]
}
