package mock

import (
	"context"

	"github.com/fwojciec/notefetch"
)

var _ notefetch.NoteArchive = (*NoteArchive)(nil)

// NoteArchive is a mock implementation of notefetch.NoteArchive.
type NoteArchive struct {
	SaveFn   func(ctx context.Context, note *notefetch.Note) error
	CommitFn func() error
	AbortFn  func() error
}

func (a *NoteArchive) Save(ctx context.Context, note *notefetch.Note) error {
	return a.SaveFn(ctx, note)
}

func (a *NoteArchive) Commit() error {
	return a.CommitFn()
}

func (a *NoteArchive) Abort() error {
	return a.AbortFn()
}
