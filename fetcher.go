package notefetch

import "context"

// FetchedPage is the raw result of fetching a page.
type FetchedPage struct {
	// URL is the final URL after redirects. It is the base URL that
	// relative references in the page resolve against.
	URL string

	// StatusCode is the HTTP status of the response. Fetchers are permissive
	// by default and return non-2xx pages too, so callers should inspect it.
	StatusCode int

	HTML string
}

// Fetcher retrieves HTML pages.
type Fetcher interface {
	// Fetch performs a single GET for the page body.
	// Transport failures are reported as ENETWORK.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchedPage, error)
}

// Prober performs lightweight existence checks against remote resources.
type Prober interface {
	// Probe reports whether the resource at url is reachable.
	// Any failure (network, timeout, non-success status) yields false;
	// probing never returns an error so it can't abort an extraction.
	Probe(ctx context.Context, url string) bool
}
