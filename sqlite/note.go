package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/notefetch"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ notefetch.NoteService = (*NoteService)(nil)

// NoteService implements notefetch.NoteService using SQLite.
type NoteService struct {
	db *DB
}

// NewNoteService creates a new NoteService.
func NewNoteService(db *DB) *NoteService {
	return &NoteService{db: db}
}

const noteColumns = "id, title, source_url, blocks, content_hash, created_at, modified_at"

// CreateNote creates a new note with a generated ID. Zero timestamps are
// set to the current time.
func (s *NoteService) CreateNote(ctx context.Context, note *notefetch.Note) error {
	if err := note.Validate(); err != nil {
		return err
	}

	blocks, err := encodeBlocks(note.Content.Blocks)
	if err != nil {
		return err
	}

	note.ID = uuid.New().String()
	if note.CreatedAt.IsZero() {
		note.CreatedAt = s.db.now()
	}
	if note.Content.LastModified.IsZero() {
		note.Content.LastModified = note.CreatedAt
	}
	note.ContentHash = hashBlocks(blocks)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO notes (id, title, source_url, blocks, search_text, content_hash, created_at, modified_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, note.ID, note.Title, note.SourceURL, blocks, searchText(note), note.ContentHash,
		formatTime(note.CreatedAt), formatTime(note.Content.LastModified))

	return err
}

// FindNoteByID retrieves a note by ID.
func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*notefetch.Note, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+noteColumns+" FROM notes WHERE id = ?", id)

	note, err := scanNote(row)
	if err == sql.ErrNoRows {
		return nil, notefetch.Errorf(notefetch.ENOTFOUND, "note not found")
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

// FindNotes retrieves notes matching the filter, most recently modified first.
func (s *NoteService) FindNotes(ctx context.Context, filter notefetch.NoteFilter) ([]*notefetch.Note, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + noteColumns + " FROM notes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Query != nil && *filter.Query != "" {
		query.WriteString(" AND instr(search_text, ?) > 0")
		args = append(args, strings.ToLower(*filter.Query))
	}
	if filter.Day != nil {
		start := filter.Day.UTC().Truncate(24 * time.Hour)
		query.WriteString(" AND modified_at >= ? AND modified_at < ?")
		args = append(args, formatTime(start), formatTime(start.Add(24*time.Hour)))
	}

	query.WriteString(" ORDER BY modified_at DESC, created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []*notefetch.Note
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// UpdateNote updates an existing note and bumps its modification time.
func (s *NoteService) UpdateNote(ctx context.Context, id string, upd notefetch.NoteUpdate) (*notefetch.Note, error) {
	note, err := s.FindNoteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		note.Title = *upd.Title
	}
	if upd.Blocks != nil {
		note.Content.Blocks = upd.Blocks
	}
	if err := note.Validate(); err != nil {
		return nil, err
	}

	blocks, err := encodeBlocks(note.Content.Blocks)
	if err != nil {
		return nil, err
	}
	note.ContentHash = hashBlocks(blocks)
	note.Content.LastModified = s.db.now()

	_, err = s.db.ExecContext(ctx, `
		UPDATE notes
		SET title = ?, blocks = ?, search_text = ?, content_hash = ?, modified_at = ?
		WHERE id = ?
	`, note.Title, blocks, searchText(note), note.ContentHash, formatTime(note.Content.LastModified), id)
	if err != nil {
		return nil, err
	}

	return note, nil
}

// DeleteNote permanently removes a note.
func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notefetch.Errorf(notefetch.ENOTFOUND, "note not found")
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanNote(row scanner) (*notefetch.Note, error) {
	var note notefetch.Note
	var blocks, createdAt, modifiedAt string

	if err := row.Scan(&note.ID, &note.Title, &note.SourceURL, &blocks, &note.ContentHash,
		&createdAt, &modifiedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(blocks), &note.Content.Blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks: %w", err)
	}

	var err error
	if note.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if note.Content.LastModified, err = parseRFC3339(modifiedAt, "modified_at"); err != nil {
		return nil, err
	}
	return &note, nil
}

func encodeBlocks(blocks []notefetch.EditorBlock) (string, error) {
	if blocks == nil {
		blocks = []notefetch.EditorBlock{}
	}
	b, err := json.Marshal(blocks)
	if err != nil {
		return "", fmt.Errorf("failed to encode blocks: %w", err)
	}
	return string(b), nil
}

// hashBlocks computes the xxHash of the encoded blocks as a hex string.
func hashBlocks(encoded string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(encoded))
}

// searchText is the lowercased title and unescaped paragraph text a query
// is matched against, one entry per line.
func searchText(note *notefetch.Note) string {
	parts := []string{note.Title}
	for _, b := range note.Content.Blocks {
		if b.Type == notefetch.EditorParagraph {
			parts = append(parts, html.UnescapeString(b.Text()))
		}
	}
	return strings.ToLower(strings.Join(parts, "\n"))
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
