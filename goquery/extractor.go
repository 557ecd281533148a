package goquery

import (
	"context"
	"net/url"

	"github.com/fwojciec/notefetch"
)

// Ensure Extractor implements notefetch.Extractor at compile time.
var _ notefetch.Extractor = (*Extractor)(nil)

// Extractor parses a page once and runs metadata extraction and content
// linearization over the same tree.
type Extractor struct {
	linearizer *Linearizer
}

// NewExtractor creates a new Extractor. Images are kept only if prober
// reports them reachable.
func NewExtractor(prober notefetch.Prober, opts ...Option) *Extractor {
	return &Extractor{linearizer: NewLinearizer(prober, opts...)}
}

// Extract parses rawHTML and returns its metadata and ordered content.
// Returns EINVALID if baseURL is not absolute and EPARSE if the markup
// cannot be read.
func (e *Extractor) Extract(ctx context.Context, rawHTML string, baseURL string) (*notefetch.Extraction, error) {
	base, err := url.Parse(baseURL)
	if err != nil || !base.IsAbs() {
		return nil, notefetch.Errorf(notefetch.EINVALID, "invalid base URL %q", baseURL)
	}

	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	return &notefetch.Extraction{
		Meta:    ExtractMetadata(doc),
		Content: e.linearizer.Linearize(ctx, doc, rawHTML, base),
	}, nil
}
