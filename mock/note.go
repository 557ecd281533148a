package mock

import (
	"context"

	"github.com/fwojciec/notefetch"
)

var _ notefetch.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of notefetch.NoteService.
type NoteService struct {
	CreateNoteFn   func(ctx context.Context, note *notefetch.Note) error
	FindNoteByIDFn func(ctx context.Context, id string) (*notefetch.Note, error)
	FindNotesFn    func(ctx context.Context, filter notefetch.NoteFilter) ([]*notefetch.Note, error)
	UpdateNoteFn   func(ctx context.Context, id string, upd notefetch.NoteUpdate) (*notefetch.Note, error)
	DeleteNoteFn   func(ctx context.Context, id string) error
}

func (s *NoteService) CreateNote(ctx context.Context, note *notefetch.Note) error {
	return s.CreateNoteFn(ctx, note)
}

func (s *NoteService) FindNoteByID(ctx context.Context, id string) (*notefetch.Note, error) {
	return s.FindNoteByIDFn(ctx, id)
}

func (s *NoteService) FindNotes(ctx context.Context, filter notefetch.NoteFilter) ([]*notefetch.Note, error) {
	return s.FindNotesFn(ctx, filter)
}

func (s *NoteService) UpdateNote(ctx context.Context, id string, upd notefetch.NoteUpdate) (*notefetch.Note, error) {
	return s.UpdateNoteFn(ctx, id, upd)
}

func (s *NoteService) DeleteNote(ctx context.Context, id string) error {
	return s.DeleteNoteFn(ctx, id)
}

var _ notefetch.NoteImporter = (*NoteImporter)(nil)

// NoteImporter is a mock implementation of notefetch.NoteImporter.
type NoteImporter struct {
	ImportFn func(ctx context.Context, rawURL string, title string) (*notefetch.Note, error)
}

func (i *NoteImporter) Import(ctx context.Context, rawURL string, title string) (*notefetch.Note, error) {
	return i.ImportFn(ctx, rawURL, title)
}
