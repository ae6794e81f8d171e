package http

import (
	"context"
	"net/http"
	"time"

	"github.com/pagelens/pagelens"
)

// DefaultProbeTimeout is the timeout for resource HEAD probes. Kept short
// since probes are best-effort and a slow resource should not stall the
// whole analysis.
const DefaultProbeTimeout = 2 * time.Second

// Ensure Prober implements pagelens.Prober at compile time.
var _ pagelens.Prober = (*Prober)(nil)

// Prober reads declared sub-resource sizes with lightweight HEAD requests.
type Prober struct {
	client    *http.Client
	userAgent string
}

// NewProber creates a new Prober with the default probe timeout.
func NewProber() *Prober {
	return &Prober{
		client:    &http.Client{Timeout: DefaultProbeTimeout},
		userAgent: DefaultUserAgent,
	}
}

// Head issues a HEAD request and returns the advertised Content-Length.
// A response without a declared length yields zero.
func (p *Prober) Head(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, pagelens.Errorf(pagelens.EUNAVAILABLE, "failed to probe %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, pagelens.Errorf(pagelens.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	if resp.ContentLength < 0 {
		return 0, nil
	}
	return resp.ContentLength, nil
}
