package pagelens

import (
	"context"
	"net/http"
	"time"
)

// FetchResult holds the raw response of a single page fetch. It is created
// once per Fetcher call and never mutated afterwards.
type FetchResult struct {
	// URL is the URL that was fetched, used as the base URL for resolving
	// relative references found in the body.
	URL string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Header is the response header mapping. Lookups are case-insensitive
	// via http.Header.Get.
	Header http.Header

	// Body is the response body decoded as text.
	Body string

	// Size is the body length in bytes.
	Size int

	// Encoding is the charset declared in the Content-Type header,
	// empty when the server declared none.
	Encoding string

	// Elapsed is the end-to-end duration of the request.
	Elapsed time.Duration

	// ContentHash is a 64-bit hash of the body, usable for detecting
	// unchanged pages between runs.
	ContentHash uint64
}

// Fetcher retrieves the raw response for a URL with a single blocking GET.
// A failed request (network error, timeout, non-2xx status) is terminal
// for the call; implementations do not retry.
type Fetcher interface {
	// Fetch performs the request. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Prober issues lightweight HEAD requests against sub-resources to read
// their declared size without downloading them.
type Prober interface {
	// Head returns the Content-Length advertised for the URL, or an error
	// when the request fails or the server does not declare a length.
	Head(ctx context.Context, url string) (int64, error)
}
