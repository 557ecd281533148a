package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/notefetch"
	"github.com/fwojciec/notefetch/goquery"
	"github.com/fwojciec/notefetch/htmltomarkdown"
	nfhttp "github.com/fwojciec/notefetch/http"
	"github.com/fwojciec/notefetch/readability"
	"github.com/fwojciec/notefetch/scrape"
	nfslog "github.com/fwojciec/notefetch/slog"
	"github.com/fwojciec/notefetch/sqlite"
	"github.com/fwojciec/notefetch/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing. Built from flags when nil.
	Scraper     notefetch.Scraper
	NoteService notefetch.NoteService
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("notefetch"),
		kong.Description("Extract web pages into ordered content blocks and keep them as notes"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_db": defaultDBPath()},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notefetch --help' to see available commands")
	}

	if len(args) == 1 && (args[0] == "help" || args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Converter: htmltomarkdown.NewConverter(),
	}

	deps.Scraper = m.Scraper
	if deps.Scraper == nil {
		deps.Scraper = newScraper(&cli.Config, logger)
	}

	if needsNotes(kongCtx.Command()) {
		notes, err := m.openNotes(cli.DB, stderr)
		if err != nil {
			return err
		}
		defer m.Close()

		deps.Notes = notes
		deps.Importer = &scrape.Importer{Scraper: deps.Scraper, Notes: notes}
	}

	return kongCtx.Run(deps)
}

// openNotes returns the configured NoteService, opening the database at
// path unless one was injected.
func (m *Main) openNotes(path string, stderr io.Writer) (notefetch.NoteService, error) {
	if m.NoteService != nil {
		return m.NoteService, nil
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NOTEFETCH_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", path, err)
	}
	return sqlite.NewNoteService(m.DB), nil
}

// needsNotes reports whether the kong command path uses the note store.
func needsNotes(command string) bool {
	return commandName(command) != "extract"
}

// newScraper wires the extraction pipeline from configuration.
func newScraper(cfg *Config, logger *slog.Logger) notefetch.Scraper {
	fetchOpts := []nfhttp.Option{nfhttp.WithTimeout(cfg.Timeout)}
	if cfg.StrictStatus {
		fetchOpts = append(fetchOpts, nfhttp.WithStrictStatus())
	}

	probeOpts := []nfhttp.ProbeOption{nfhttp.WithProbeTimeout(cfg.ProbeTimeout)}
	if cfg.ProbeRPS > 0 {
		probeOpts = append(probeOpts, nfhttp.WithDomainLimiter(nfhttp.NewDomainLimiter(cfg.ProbeRPS, cfg.ProbeBurst)))
	}

	extractOpts := []goquery.Option{goquery.WithProbeConcurrency(cfg.ProbeConcurrency)}
	if d := newDistiller(cfg.Fallback); d != nil {
		extractOpts = append(extractOpts, goquery.WithDistiller(d))
	}

	fetcher := nfslog.NewLoggingFetcher(nfhttp.NewFetcher(fetchOpts...), logger)
	prober := nfslog.NewLoggingProber(nfhttp.NewProber(probeOpts...), logger)
	extractor := nfslog.NewLoggingExtractor(goquery.NewExtractor(prober, extractOpts...), logger)

	return nfslog.NewLoggingScraper(&scrape.Scraper{
		Fetcher:   fetcher,
		Extractor: extractor,
		Logger:    logger,
	}, logger)
}

func newDistiller(name string) notefetch.Distiller {
	switch name {
	case FallbackReadability:
		return readability.NewDistiller()
	case FallbackTrafilatura:
		return trafilatura.NewDistiller()
	}
	return nil
}

// newLogger returns a text logger on w. Verbose output includes debug
// records such as individual image probes.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "notefetch.db"
	}
	return filepath.Join(home, ".notefetch", "notefetch.db")
}
