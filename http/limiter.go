package http

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/notefetch"
	"golang.org/x/time/rate"
)

// DomainLimiter spaces out requests to the same host using one token bucket
// per host. Requests to different hosts do not wait on each other.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// per host, with the given burst. A burst below 1 is treated as 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	if burst < 1 {
		burst = 1
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
		burst:    burst,
	}
}

// Wait blocks until a request to the host of rawURL is allowed. Hosts are
// compared case-insensitively and without port.
// Returns EINVALID if rawURL has no host, or the context error if ctx ends
// first.
func (d *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	host, err := limiterKey(rawURL)
	if err != nil {
		return err
	}
	return d.limiter(host).Wait(ctx)
}

func (d *DomainLimiter) limiter(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.limiters[host] = l
	}
	return l
}

func limiterKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "", notefetch.Errorf(notefetch.EINVALID, "no host in URL %q", rawURL)
	}
	return strings.ToLower(u.Hostname()), nil
}
