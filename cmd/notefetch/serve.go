package main

import (
	"fmt"

	"github.com/fwojciec/notefetch"
	nfhttp "github.com/fwojciec/notefetch/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	s := nfhttp.NewServer()
	s.Addr = c.Addr
	s.Scraper = deps.Scraper
	s.Notes = deps.Notes
	s.Importer = deps.Importer
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	<-deps.Ctx.Done()

	return s.Close()
}
