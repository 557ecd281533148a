// Package http provides net/http implementations of notefetch.Fetcher and
// notefetch.Prober, and the HTTP boundary serving extraction results.
package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"time"

	"github.com/fwojciec/notefetch"
)

// DefaultFetchTimeout is the default timeout for page requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a page body is read.
const DefaultMaxBodySize = 8 << 20

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "Mozilla/5.0 (compatible; notefetch/1.0; +https://github.com/fwojciec/notefetch)"

// Ensure Fetcher implements notefetch.Fetcher at compile time.
var _ notefetch.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML pages using HTTP GET requests.
// It does not execute JavaScript.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	userAgent    string
	maxBodySize  int64
	strictStatus bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for page requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize caps the number of body bytes read per page.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithStrictStatus makes non-2xx responses fail with EHTTP instead of
// returning the page for best-effort parsing.
func WithStrictStatus() Option {
	return func(f *Fetcher) {
		f.strictStatus = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     DefaultFetchTimeout,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at the given URL. Non-2xx responses are returned
// with their status code set unless the Fetcher is strict.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*notefetch.FetchedPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, notefetch.Errorf(notefetch.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	if f.strictStatus && !isSuccess(resp.StatusCode) {
		return nil, notefetch.HTTPErrorf(resp.StatusCode, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, networkError(fmt.Errorf("read body: %w", err))
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &notefetch.FetchedPage{
		URL:        finalURL,
		StatusCode: resp.StatusCode,
		HTML:       string(body),
	}, nil
}

// networkError reports a transport failure as ENETWORK, keeping the
// underlying cause in the message.
func networkError(err error) error {
	var uerr *neturl.Error
	if errors.As(err, &uerr) && uerr.Timeout() {
		return notefetch.Errorf(notefetch.ENETWORK, "timed out fetching %s", uerr.URL)
	}
	return notefetch.Errorf(notefetch.ENETWORK, "%v", err)
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
