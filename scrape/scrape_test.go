package scrape_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/notefetch"
	"github.com/fwojciec/notefetch/goquery"
	nfhttp "github.com/fwojciec/notefetch/http"
	"github.com/fwojciec/notefetch/mock"
	"github.com/fwojciec/notefetch/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScraper wires the real fetcher, prober and extractor.
func newScraper(logger *slog.Logger) *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher:   nfhttp.NewFetcher(),
		Extractor: goquery.NewExtractor(nfhttp.NewProber()),
		Logger:    logger,
	}
}

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("extracts a page end to end", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`<html><head><title>Hi</title><meta name="description" content="D"></head>` +
				`<body><main><h1>Title</h1><p>Body</p><a href="mailto:a@b.com">Mail</a></main></body></html>`))
		}))
		defer server.Close()

		result := newScraper(nil).Scrape(context.Background(), server.URL)

		assert.Equal(t, &notefetch.ExtractionResult{
			Success: 1,
			Link:    server.URL,
			Meta:    notefetch.PageMetadata{Title: "Hi", Description: "D"},
			Content: []notefetch.ContentBlock{
				notefetch.Heading{Level: 1, Text: "Title"},
				notefetch.Paragraph{Text: "Body"},
				notefetch.Email{Text: "Mail", Href: "mailto:a@b.com"},
			},
		}, result)
	})

	t.Run("keeps only reachable images", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<body><img src="x.png" alt="x"><img src="/missing.png"><p>after</p></body>`))
		})
		mux.HandleFunc("GET /x.png", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "image/png")
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		result := newScraper(nil).Scrape(context.Background(), server.URL+"/")

		require.True(t, result.OK())
		assert.Equal(t, []notefetch.ContentBlock{
			notefetch.Image{Src: server.URL + "/x.png", Alt: "x"},
			notefetch.Paragraph{Text: "after"},
		}, result.Content)
	})

	t.Run("resolves against the final URL after redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.Handle("GET /old", http.RedirectHandler("/new/page", http.StatusMovedPermanently))
		mux.HandleFunc("GET /new/page", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<body><a href="sibling">Sibling</a></body>`))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		result := newScraper(nil).Scrape(context.Background(), server.URL+"/old")

		require.True(t, result.OK())
		assert.Equal(t, server.URL+"/old", result.Link)
		assert.Equal(t, []notefetch.ContentBlock{
			notefetch.Link{Text: "Sibling", Href: server.URL + "/new/sibling"},
		}, result.Content)
	})

	t.Run("extracts non-2xx pages and logs the status", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`<html><head><title>Not Found</title></head><body><p>gone</p></body></html>`))
		}))
		defer server.Close()

		var buf bytes.Buffer
		result := newScraper(slog.New(slog.NewTextHandler(&buf, nil))).Scrape(context.Background(), server.URL)

		require.True(t, result.OK())
		assert.Equal(t, "Not Found", result.Meta.Title)
		assert.Equal(t, []notefetch.ContentBlock{notefetch.Paragraph{Text: "gone"}}, result.Content)
		assert.Contains(t, buf.String(), "status=404")
	})

	t.Run("reports fetch failures in the envelope", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		result := newScraper(nil).Scrape(context.Background(), url)

		assert.Equal(t, 0, result.Success)
		assert.Equal(t, url, result.Link)
		assert.NotEmpty(t, result.Error)
		assert.Empty(t, result.Content)
		assert.Equal(t, notefetch.PageMetadata{}, result.Meta)
	})

	t.Run("reports empty input without fetching", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{FetchFn: func(context.Context, string) (*notefetch.FetchedPage, error) {
				t.Error("fetcher should not be called")
				return nil, nil
			}},
			Extractor: &mock.Extractor{},
		}

		result := s.Scrape(context.Background(), "   ")

		assert.Equal(t, 0, result.Success)
		assert.Equal(t, "url required", result.Error)
	})

	t.Run("prepends https to scheme-less input", func(t *testing.T) {
		t.Parallel()

		var fetched string
		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, url string) (*notefetch.FetchedPage, error) {
				fetched = url
				return &notefetch.FetchedPage{URL: url, StatusCode: 200, HTML: "<p>x</p>"}, nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(_ context.Context, _ string, baseURL string) (*notefetch.Extraction, error) {
				assert.Equal(t, "https://example.com", baseURL)
				return &notefetch.Extraction{}, nil
			}},
		}

		result := s.Scrape(context.Background(), "example.com")

		assert.Equal(t, "https://example.com", fetched)
		assert.Equal(t, "example.com", result.Link)
		assert.True(t, result.OK())
		assert.NotNil(t, result.Content)
	})

	t.Run("reports extractor failures in the envelope", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Fetcher: &mock.Fetcher{FetchFn: func(_ context.Context, url string) (*notefetch.FetchedPage, error) {
				return &notefetch.FetchedPage{URL: url, StatusCode: 200}, nil
			}},
			Extractor: &mock.Extractor{ExtractFn: func(context.Context, string, string) (*notefetch.Extraction, error) {
				return nil, notefetch.Errorf(notefetch.EPARSE, "unreadable markup")
			}},
		}

		result := s.Scrape(context.Background(), "https://a.com")

		assert.Equal(t, 0, result.Success)
		assert.Equal(t, "unreadable markup", result.Error)
	})
}

func TestImporter_Import(t *testing.T) {
	t.Parallel()

	scraperReturning := func(result *notefetch.ExtractionResult) *mock.Scraper {
		return &mock.Scraper{ScrapeFn: func(context.Context, string) *notefetch.ExtractionResult {
			return result
		}}
	}

	t.Run("creates a note from extracted content", func(t *testing.T) {
		t.Parallel()

		var created *notefetch.Note
		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewExtractionResult("a.com",
				notefetch.PageMetadata{Title: "Page"},
				[]notefetch.ContentBlock{notefetch.Paragraph{Text: "Body"}})),
			Notes: &mock.NoteService{CreateNoteFn: func(_ context.Context, note *notefetch.Note) error {
				note.ID = "n1"
				created = note
				return nil
			}},
		}

		note, err := importer.Import(context.Background(), " a.com ", "")

		require.NoError(t, err)
		assert.Same(t, created, note)
		assert.Equal(t, "n1", note.ID)
		assert.Equal(t, "Page", note.Title)
		assert.Equal(t, "a.com", note.SourceURL)
		assert.Equal(t, []notefetch.EditorBlock{
			{Type: notefetch.EditorParagraph, Data: map[string]any{"text": "Body"}},
		}, note.Content.Blocks)
	})

	t.Run("prefers the given title", func(t *testing.T) {
		t.Parallel()

		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewExtractionResult("a.com",
				notefetch.PageMetadata{Title: "Page"},
				[]notefetch.ContentBlock{notefetch.Paragraph{Text: "Body"}})),
			Notes: &mock.NoteService{CreateNoteFn: func(context.Context, *notefetch.Note) error { return nil }},
		}

		note, err := importer.Import(context.Background(), "a.com", "Mine")

		require.NoError(t, err)
		assert.Equal(t, "Mine", note.Title)
	})

	t.Run("falls back to default title", func(t *testing.T) {
		t.Parallel()

		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewExtractionResult("a.com",
				notefetch.PageMetadata{Title: "  "},
				[]notefetch.ContentBlock{notefetch.Paragraph{Text: "Body"}})),
			Notes: &mock.NoteService{CreateNoteFn: func(context.Context, *notefetch.Note) error { return nil }},
		}

		note, err := importer.Import(context.Background(), "a.com", "")

		require.NoError(t, err)
		assert.Equal(t, notefetch.DefaultNoteTitle, note.Title)
	})

	t.Run("returns envelope message when scrape fails", func(t *testing.T) {
		t.Parallel()

		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewFailureResult("a.com",
				notefetch.Errorf(notefetch.ENETWORK, "connection refused"))),
			Notes: &mock.NoteService{},
		}

		_, err := importer.Import(context.Background(), "a.com", "")

		assert.Equal(t, notefetch.EINVALID, notefetch.ErrorCode(err))
		assert.Equal(t, "connection refused", notefetch.ErrorMessage(err))
	})

	t.Run("rejects pages without content", func(t *testing.T) {
		t.Parallel()

		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewExtractionResult("a.com", notefetch.PageMetadata{}, nil)),
			Notes:   &mock.NoteService{},
		}

		_, err := importer.Import(context.Background(), "a.com", "")

		assert.Equal(t, notefetch.EINVALID, notefetch.ErrorCode(err))
	})

	t.Run("propagates store errors", func(t *testing.T) {
		t.Parallel()

		importer := &scrape.Importer{
			Scraper: scraperReturning(notefetch.NewExtractionResult("a.com",
				notefetch.PageMetadata{}, []notefetch.ContentBlock{notefetch.Paragraph{Text: "Body"}})),
			Notes: &mock.NoteService{CreateNoteFn: func(context.Context, *notefetch.Note) error {
				return errors.New("disk full")
			}},
		}

		_, err := importer.Import(context.Background(), "a.com", "")

		assert.EqualError(t, err, "disk full")
	})
}
