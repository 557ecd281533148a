// Package scrape runs the page extraction pipeline: it normalizes a URL,
// fetches the page, extracts metadata and content, and assembles the
// result. It also imports extraction results as notes.
package scrape

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/notefetch"
)

// Ensure Scraper implements notefetch.Scraper at compile time.
var _ notefetch.Scraper = (*Scraper)(nil)

// Scraper orchestrates a single page extraction.
type Scraper struct {
	Fetcher   notefetch.Fetcher
	Extractor notefetch.Extractor

	// Logger, if set, receives a warning for pages served with a non-2xx
	// status that are still extracted.
	Logger *slog.Logger
}

// Scrape extracts the page at rawURL. It never returns nil: page-level
// failures are reported through the result's Success and Error fields.
// The result's Link echoes rawURL as given.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) *notefetch.ExtractionResult {
	extraction, err := s.extract(ctx, rawURL)
	if err != nil {
		return notefetch.NewFailureResult(rawURL, err)
	}
	return notefetch.NewExtractionResult(rawURL, extraction.Meta, extraction.Content)
}

func (s *Scraper) extract(ctx context.Context, rawURL string) (*notefetch.Extraction, error) {
	target, err := notefetch.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}

	page, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, err
	}

	if s.Logger != nil && (page.StatusCode < 200 || page.StatusCode > 299) {
		s.Logger.Warn("extracting page with error status",
			"url", page.URL,
			"status", page.StatusCode,
		)
	}

	base := page.URL
	if base == "" {
		base = target
	}
	return s.Extractor.Extract(ctx, page.HTML, base)
}

// Ensure Importer implements notefetch.NoteImporter at compile time.
var _ notefetch.NoteImporter = (*Importer)(nil)

// Importer stores extraction results as notes.
type Importer struct {
	Scraper notefetch.Scraper
	Notes   notefetch.NoteService
}

// Import scrapes rawURL and creates a note from its content. An empty
// title falls back to the page title, then to notefetch.DefaultNoteTitle.
// Returns EINVALID if the page could not be extracted or had no content.
func (i *Importer) Import(ctx context.Context, rawURL string, title string) (*notefetch.Note, error) {
	result := i.Scraper.Scrape(ctx, rawURL)
	if !result.OK() {
		return nil, notefetch.Errorf(notefetch.EINVALID, "%s", result.Error)
	}
	if len(result.Content) == 0 {
		return nil, notefetch.Errorf(notefetch.EINVALID, "no content found at %s", rawURL)
	}

	note := &notefetch.Note{
		Title:     noteTitle(title, result.Meta.Title),
		SourceURL: strings.TrimSpace(rawURL),
		Content: notefetch.NoteContent{
			Blocks: notefetch.EditorBlocks(result.Content),
		},
	}
	if err := i.Notes.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func noteTitle(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return notefetch.DefaultNoteTitle
}
