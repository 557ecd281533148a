package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/notefetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Scraper   notefetch.Scraper
	Notes     notefetch.NoteService
	Importer  notefetch.NoteImporter
	Converter notefetch.Converter
}

// Distiller fallbacks accepted by --fallback.
const (
	FallbackNone        = "none"
	FallbackReadability = "readability"
	FallbackTrafilatura = "trafilatura"
)

// Config holds the global flags that shape the extraction pipeline.
type Config struct {
	DB               string        `name:"db" env:"NOTEFETCH_DB" default:"${default_db}" help:"Path to the note database"`
	Timeout          time.Duration `env:"NOTEFETCH_TIMEOUT" default:"10s" help:"Page fetch timeout"`
	ProbeTimeout     time.Duration `env:"NOTEFETCH_PROBE_TIMEOUT" default:"5s" help:"Image probe timeout"`
	ProbeConcurrency int           `env:"NOTEFETCH_PROBE_CONCURRENCY" default:"8" help:"Image probes in flight per page"`
	ProbeRPS         float64       `name:"probe-rps" env:"NOTEFETCH_PROBE_RPS" default:"0" help:"Per-host image probe rate limit (0 disables)"`
	ProbeBurst       int           `default:"1" help:"Per-host image probe burst"`
	Fallback         string        `enum:"none,readability,trafilatura" default:"none" help:"Distiller used when a page has no main content container (${enum})"`
	StrictStatus     bool          `help:"Treat non-2xx page responses as failures"`
	Verbose          bool          `short:"v" help:"Log debug output to stderr"`
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config `embed:""`

	Serve   ServeCmd   `cmd:"" help:"Serve the extraction and note API over HTTP"`
	Extract ExtractCmd `cmd:"" help:"Extract a page into ordered content blocks"`
	Import  ImportCmd  `cmd:"" help:"Extract a page and save it as a note"`
	List    ListCmd    `cmd:"" help:"List saved notes"`
	Show    ShowCmd    `cmd:"" help:"Show a saved note"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved note"`
	Export  ExportCmd  `cmd:"" help:"Export notes as markdown files"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `env:"NOTEFETCH_ADDR" default:":8080" help:"Address to listen on"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Markdown bool   `short:"m" help:"Print content as markdown instead of JSON"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Title string `short:"t" help:"Note title (defaults to the page title)"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Query string `short:"q" help:"Match title or paragraph text"`
	Day   string `help:"Only notes modified on this UTC day (YYYY-MM-DD)"`
	Limit int    `short:"n" default:"0" help:"Maximum number of notes (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Note ID"`
	JSON bool   `name:"json" help:"Print the stored note as JSON"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Note ID"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir   string `arg:"" type:"path" help:"Directory to write notes into (replaced on success)"`
	Query string `short:"q" help:"Match title or paragraph text"`
	Day   string `help:"Only notes modified on this UTC day (YYYY-MM-DD)"`
}

// commandName returns the leading command word of a kong command path,
// e.g. "extract" for "extract <url>".
func commandName(command string) string {
	name, _, _ := strings.Cut(command, " ")
	return name
}

// noteFilter builds a NoteFilter from the shared list and export flags.
func noteFilter(query, day string) (notefetch.NoteFilter, error) {
	var filter notefetch.NoteFilter
	if q := strings.TrimSpace(query); q != "" {
		filter.Query = &q
	}
	if day != "" {
		t, err := time.Parse(time.DateOnly, day)
		if err != nil {
			return filter, notefetch.Errorf(notefetch.EINVALID, "invalid day %q, expected YYYY-MM-DD", day)
		}
		filter.Day = &t
	}
	return filter, nil
}
