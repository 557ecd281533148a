package notefetch

import "context"

// NoteArchive persists notes to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type NoteArchive interface {
	Save(ctx context.Context, note *Note) error
	Commit() error
	Abort() error
}

// ExportNotes saves every note matching filter to archive and commits it.
// Nothing is committed if any note fails to save. Notes without text
// content are skipped. Returns the number of notes exported.
func ExportNotes(ctx context.Context, notes NoteService, archive NoteArchive, filter NoteFilter) (int, error) {
	found, err := notes.FindNotes(ctx, filter)
	if err != nil {
		return 0, err
	}

	var n int
	for _, note := range found {
		if !note.HasContent() {
			continue
		}
		if err := archive.Save(ctx, note); err != nil {
			_ = archive.Abort()
			return 0, err
		}
		n++
	}

	if err := archive.Commit(); err != nil {
		_ = archive.Abort()
		return 0, err
	}
	return n, nil
}
