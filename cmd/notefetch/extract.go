package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/notefetch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	result := deps.Scraper.Scrape(deps.Ctx, c.URL)

	if !c.Markdown {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return err
		}
		if !result.OK() {
			return notefetch.Errorf(notefetch.EINVALID, "%s", result.Error)
		}
		return nil
	}

	if !result.OK() {
		fmt.Fprintf(deps.Stderr, "error: %s\n", result.Error)
		return notefetch.Errorf(notefetch.EINVALID, "%s", result.Error)
	}

	md, err := notefetch.BlocksMarkdown(deps.Converter, result.Content)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", notefetch.ErrorMessage(err))
		return err
	}
	if md == "" {
		fmt.Fprintf(deps.Stderr, "No content found at %s\n", result.Link)
		return nil
	}
	fmt.Fprint(deps.Stdout, md)
	return nil
}
