// Package slog provides log/slog decorators for the notefetch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/notefetch"
)

// Ensure LoggingFetcher implements notefetch.Fetcher.
var _ notefetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   notefetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next notefetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *notefetch.FetchedPage, err error) {
	defer func(begin time.Time) {
		var status, size int
		if page != nil {
			status, size = page.StatusCode, len(page.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingProber implements notefetch.Prober.
var _ notefetch.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with debug logging.
type LoggingProber struct {
	next   notefetch.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next notefetch.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the outcome at debug level.
func (p *LoggingProber) Probe(ctx context.Context, url string) (ok bool) {
	defer func(begin time.Time) {
		p.logger.Debug("probe",
			"url", url,
			"reachable", ok,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.Probe(ctx, url)
}

// Ensure LoggingExtractor implements notefetch.Extractor.
var _ notefetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   notefetch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next notefetch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the block count.
func (e *LoggingExtractor) Extract(ctx context.Context, html string, baseURL string) (ext *notefetch.Extraction, err error) {
	defer func(begin time.Time) {
		var blocks int
		if ext != nil {
			blocks = len(ext.Content)
		}
		e.logger.Info("extract",
			"url", baseURL,
			"blocks", blocks,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, html, baseURL)
}

// Ensure LoggingScraper implements notefetch.Scraper.
var _ notefetch.Scraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a Scraper with logging. Failed results are logged
// at warn level with their error message.
type LoggingScraper struct {
	next   notefetch.Scraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next notefetch.Scraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape delegates to the wrapped scraper and logs the result.
func (s *LoggingScraper) Scrape(ctx context.Context, rawURL string) (result *notefetch.ExtractionResult) {
	defer func(begin time.Time) {
		if !result.OK() {
			s.logger.Warn("scrape failed",
				"url", rawURL,
				"error", result.Error,
				"duration", time.Since(begin),
			)
			return
		}
		s.logger.Info("scrape",
			"url", rawURL,
			"blocks", len(result.Content),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Scrape(ctx, rawURL)
}
