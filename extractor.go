package notefetch

import "context"

// Extraction holds everything extracted from a single parsed page.
type Extraction struct {
	Meta    PageMetadata
	Content []ContentBlock
}

// Extractor parses page HTML and extracts metadata and linearized content.
type Extractor interface {
	// Extract parses html and returns its metadata and content blocks in
	// document order. Relative references resolve against baseURL.
	// Per-resource problems (unreachable images, malformed hrefs) are
	// filtered silently; only page-level failures return an error.
	Extract(ctx context.Context, html string, baseURL string) (*Extraction, error)
}

// DistillResult holds the main content of a page with boilerplate removed.
type DistillResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Distiller extracts main content from HTML pages, removing boilerplate.
// Extractors may use one as a content-root fallback when a page carries no
// semantic content container.
type Distiller interface {
	// Distill processes raw HTML and returns the main content.
	// The pageURL is used by implementations that resolve relative URLs.
	Distill(html string, pageURL string) (*DistillResult, error)
}

// Scraper runs the full page extraction pipeline for a raw URL.
type Scraper interface {
	// Scrape always returns a well-formed result; failures are reported
	// through the result's Success and Error fields.
	Scrape(ctx context.Context, rawURL string) *ExtractionResult
}
