package mock

import (
	"context"

	"github.com/fwojciec/notefetch"
)

var _ notefetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of notefetch.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*notefetch.FetchedPage, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*notefetch.FetchedPage, error) {
	return f.FetchFn(ctx, url)
}

var _ notefetch.Prober = (*Prober)(nil)

// Prober is a mock implementation of notefetch.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) bool
}

func (p *Prober) Probe(ctx context.Context, url string) bool {
	return p.ProbeFn(ctx, url)
}
