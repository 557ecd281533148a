package main

import (
	"fmt"

	"github.com/fwojciec/notefetch"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	note, err := deps.Importer.Import(deps.Ctx, c.URL, c.Title)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %q (%d blocks)\n", note.Title, len(note.Content.Blocks))
	fmt.Fprintf(deps.Stdout, "  ID: %s\n", note.ID)
	return nil
}
