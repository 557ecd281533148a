package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/notefetch"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	note, err := deps.Notes.FindNoteByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(note)
	}

	fmt.Fprintf(deps.Stdout, "# %s\n\n", note.Title)
	md, err := notefetch.NoteMarkdown(deps.Converter, note)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}
	fmt.Fprint(deps.Stdout, md)
	return nil
}
