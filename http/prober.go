package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/notefetch"
)

// DefaultProbeTimeout bounds a single probe, including any GET fallback.
const DefaultProbeTimeout = 5 * time.Second

// Ensure Prober implements notefetch.Prober at compile time.
var _ notefetch.Prober = (*Prober)(nil)

// Prober checks resource reachability with a HEAD request, falling back to
// a GET with a discarded body for servers that reject HEAD.
// Probes are never retried.
type Prober struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	limiter   *DomainLimiter
}

// ProbeOption configures a Prober.
type ProbeOption func(*Prober)

// WithProbeTimeout sets the per-probe timeout.
// Defaults to DefaultProbeTimeout (5s) if not specified.
func WithProbeTimeout(d time.Duration) ProbeOption {
	return func(p *Prober) {
		p.timeout = d
	}
}

// WithProbeUserAgent sets the User-Agent header sent with probes.
func WithProbeUserAgent(ua string) ProbeOption {
	return func(p *Prober) {
		p.userAgent = ua
	}
}

// WithDomainLimiter rate limits probes per host.
func WithDomainLimiter(l *DomainLimiter) ProbeOption {
	return func(p *Prober) {
		p.limiter = l
	}
}

// NewProber creates a new HTTP-based Prober.
func NewProber(opts ...ProbeOption) *Prober {
	p := &Prober{
		timeout:   DefaultProbeTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.client = &http.Client{
		Timeout: p.timeout,
	}

	return p
}

// Probe reports whether url answers with a 2xx or 3xx status.
func (p *Prober) Probe(ctx context.Context, url string) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if p.limiter != nil {
		if err := p.limiter.Wait(ctx, url); err != nil {
			return false
		}
	}

	status, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		return false
	}
	if isReachable(status) {
		return true
	}

	// Some servers refuse HEAD; ask again with GET.
	switch status {
	case http.StatusMethodNotAllowed, http.StatusForbidden, http.StatusNotImplemented:
	default:
		return false
	}

	status, err = p.do(ctx, http.MethodGet, url)
	if err != nil {
		return false
	}
	return isReachable(status)
}

func (p *Prober) do(ctx context.Context, method, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if method == http.MethodGet {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	}
	return resp.StatusCode, nil
}

func isReachable(status int) bool {
	return status >= 200 && status < 400
}
