package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/notefetch"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter, err := noteFilter(c.Query, c.Day)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}
	filter.Limit = c.Limit

	notes, err := deps.Notes.FindNotes(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	if len(notes) == 0 {
		fmt.Fprintln(deps.Stdout, "No notes found.")
		return nil
	}

	for _, n := range notes {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", n.ID, n.ModifiedAt().UTC().Format(time.DateOnly), n.Title)
		if n.SourceURL != "" {
			fmt.Fprintf(deps.Stdout, "  %s\n", n.SourceURL)
		}
	}
	return nil
}
