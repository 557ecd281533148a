package main

import (
	"fmt"

	"github.com/fwojciec/notefetch"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return notefetch.Errorf(notefetch.EINVALID, "use --force to confirm deletion")
	}

	note, err := deps.Notes.FindNoteByID(deps.Ctx, c.ID)
	if notefetch.ErrorCode(err) == notefetch.ENOTFOUND {
		fmt.Fprintf(deps.Stderr, "error: note %q not found. Use 'notefetch list' to see available notes.\n", c.ID)
		return err
	} else if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	if err := deps.Notes.DeleteNote(deps.Ctx, note.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted note %q\n", note.Title)
	return nil
}
