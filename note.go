package notefetch

import (
	"context"
	"strings"
	"time"
)

// DefaultNoteTitle is the title given to notes created without one.
const DefaultNoteTitle = "New Note"

// Note represents a note document as stored by the note store.
type Note struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	SourceURL   string      `json:"sourceUrl,omitempty"`
	Content     NoteContent `json:"content"`
	ContentHash string      `json:"contentHash,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// NoteContent is the editor document of a note.
type NoteContent struct {
	Blocks       []EditorBlock `json:"blocks"`
	LastModified time.Time     `json:"lastModified"`
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return Errorf(EINVALID, "note title required")
	}
	return nil
}

// HasContent reports whether any block of the note carries non-blank text.
// Notes without content are not worth keeping.
func (n *Note) HasContent() bool {
	for _, b := range n.Content.Blocks {
		if strings.TrimSpace(b.Text()) != "" {
			return true
		}
	}
	return false
}

// PreviewText returns the text of the first header or paragraph block.
func (n *Note) PreviewText() string {
	for _, b := range n.Content.Blocks {
		if b.Type == EditorHeader || b.Type == EditorParagraph {
			return b.Text()
		}
	}
	return ""
}

// ModifiedAt returns the last modification time, falling back to the
// creation time for notes that were never edited.
func (n *Note) ModifiedAt() time.Time {
	if !n.Content.LastModified.IsZero() {
		return n.Content.LastModified
	}
	return n.CreatedAt
}

// NoteService represents a service for managing notes.
type NoteService interface {
	// CreateNote creates a new note.
	CreateNote(ctx context.Context, note *Note) error

	// FindNoteByID retrieves a note by ID.
	// Returns ENOTFOUND if note does not exist.
	FindNoteByID(ctx context.Context, id string) (*Note, error)

	// FindNotes retrieves notes matching the filter, most recently
	// modified first.
	FindNotes(ctx context.Context, filter NoteFilter) ([]*Note, error)

	// UpdateNote updates an existing note.
	// Returns ENOTFOUND if note does not exist.
	UpdateNote(ctx context.Context, id string, upd NoteUpdate) (*Note, error)

	// DeleteNote permanently removes a note.
	// Returns ENOTFOUND if note does not exist.
	DeleteNote(ctx context.Context, id string) error
}

// NoteFilter represents a filter for FindNotes.
type NoteFilter struct {
	ID *string `json:"id"`

	// Query matches the title or the text of any paragraph block,
	// case-insensitively.
	Query *string `json:"query"`

	// Day matches notes last modified on the same UTC calendar day.
	Day *time.Time `json:"day"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// NoteUpdate represents fields that can be updated on a note.
type NoteUpdate struct {
	Title  *string       `json:"title"`
	Blocks []EditorBlock `json:"blocks"`
}

// NoteImporter creates notes from the content of web pages.
type NoteImporter interface {
	// Import extracts the page at rawURL and stores it as a note. An empty
	// title falls back to the page title.
	// Returns EINVALID if the page yields nothing to import.
	Import(ctx context.Context, rawURL string, title string) (*Note, error)
}
