package mock

import (
	"context"

	"github.com/fwojciec/notefetch"
)

var _ notefetch.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of notefetch.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, html string, baseURL string) (*notefetch.Extraction, error)
}

func (e *Extractor) Extract(ctx context.Context, html string, baseURL string) (*notefetch.Extraction, error) {
	return e.ExtractFn(ctx, html, baseURL)
}

var _ notefetch.Distiller = (*Distiller)(nil)

// Distiller is a mock implementation of notefetch.Distiller.
type Distiller struct {
	DistillFn func(html string, pageURL string) (*notefetch.DistillResult, error)
}

func (d *Distiller) Distill(html string, pageURL string) (*notefetch.DistillResult, error) {
	return d.DistillFn(html, pageURL)
}

var _ notefetch.Scraper = (*Scraper)(nil)

// Scraper is a mock implementation of notefetch.Scraper.
type Scraper struct {
	ScrapeFn func(ctx context.Context, rawURL string) *notefetch.ExtractionResult
}

func (s *Scraper) Scrape(ctx context.Context, rawURL string) *notefetch.ExtractionResult {
	return s.ScrapeFn(ctx, rawURL)
}
