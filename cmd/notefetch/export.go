package main

import (
	"fmt"
	"path/filepath"

	"github.com/fwojciec/notefetch"
	"github.com/fwojciec/notefetch/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	filter, err := noteFilter(c.Query, c.Day)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	dir := filepath.Clean(c.Dir)
	archive := fs.NewFileArchive(filepath.Dir(dir), filepath.Base(dir), deps.Converter)

	n, err := notefetch.ExportNotes(deps.Ctx, deps.Notes, archive, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d notes to %s\n", n, dir)
	return nil
}
