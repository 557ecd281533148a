package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/notefetch"
)

// DefaultShutdownTimeout bounds how long Close waits for in-flight requests.
const DefaultShutdownTimeout = 5 * time.Second

// DayLayout is the format of the day query parameter.
const DayLayout = "2006-01-02"

// Server serves extraction results and, when Notes is set, the note store
// over HTTP.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Addr is the bind address, e.g. ":8080".
	Addr string

	Scraper  notefetch.Scraper
	Notes    notefetch.NoteService
	Importer notefetch.NoteImporter
	Logger   *slog.Logger
}

// NewServer returns a Server. Services must be set before Open or Handler.
func NewServer() *Server {
	return &Server{Logger: slog.New(slog.DiscardHandler)}
}

// Open binds Addr and starts serving in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.Logger.Error("serve", "err", err)
		}
	}()
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), DefaultShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Handler returns the routed handler wrapped with request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /extract", s.handleExtract)
	if s.Notes != nil {
		mux.HandleFunc("GET /notes", s.handleNoteIndex)
		mux.HandleFunc("GET /notes/{id}", s.handleNoteView)
		mux.HandleFunc("DELETE /notes/{id}", s.handleNoteDelete)
	}
	if s.Importer != nil {
		mux.HandleFunc("POST /notes/import", s.handleNoteImport)
	}
	return s.logRequests(mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// handleExtract always answers 200; failures travel in the result envelope.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	result := s.Scraper.Scrape(r.Context(), r.URL.Query().Get("url"))
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleNoteIndex(w http.ResponseWriter, r *http.Request) {
	filter, err := parseNoteFilter(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	notes, err := s.Notes.FindNotes(r.Context(), filter)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if notes == nil {
		notes = []*notefetch.Note{}
	}
	s.writeJSON(w, http.StatusOK, notes)
}

func (s *Server) handleNoteView(w http.ResponseWriter, r *http.Request) {
	note, err := s.Notes.FindNoteByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, note)
}

func (s *Server) handleNoteDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.Notes.DeleteNote(r.Context(), r.PathValue("id")); err != nil {
		s.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleNoteImport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	note, err := s.Importer.Import(r.Context(), q.Get("url"), q.Get("title"))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, note)
}

// parseNoteFilter reads q, day, offset and limit from the query string.
func parseNoteFilter(r *http.Request) (notefetch.NoteFilter, error) {
	var filter notefetch.NoteFilter
	q := r.URL.Query()

	if v := q.Get("q"); v != "" {
		filter.Query = &v
	}
	if v := q.Get("day"); v != "" {
		day, err := time.Parse(DayLayout, v)
		if err != nil {
			return filter, notefetch.Errorf(notefetch.EINVALID, "invalid day %q, expected YYYY-MM-DD", v)
		}
		filter.Day = &day
	}
	for key, dst := range map[string]*int{"offset": &filter.Offset, "limit": &filter.Limit} {
		v := q.Get(key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, notefetch.Errorf(notefetch.EINVALID, "invalid %s %q", key, v)
		}
		*dst = n
	}
	return filter, nil
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	notefetch.EINVALID:  http.StatusBadRequest,
	notefetch.ENOTFOUND: http.StatusNotFound,
	notefetch.ENETWORK:  http.StatusBadGateway,
	notefetch.EHTTP:     http.StatusBadGateway,
	notefetch.EPARSE:    http.StatusUnprocessableEntity,
	notefetch.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body written for failed note requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error writes err as JSON with a status derived from its code. Internal
// errors are logged and their details withheld from the client.
func (s *Server) Error(w http.ResponseWriter, r *http.Request, err error) {
	code, message := notefetch.ErrorCode(err), notefetch.ErrorMessage(err)
	if code == notefetch.EINTERNAL {
		s.Logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	s.writeJSON(w, ErrorStatusCode(code), &ErrorResponse{Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

// statusRecorder captures the status written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func(begin time.Time) {
			s.Logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(rec, r)
	})
}
