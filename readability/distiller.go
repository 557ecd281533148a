// Package readability implements notefetch.Distiller using go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/notefetch"
	"github.com/go-shiori/go-readability"
)

// Ensure Distiller implements notefetch.Distiller at compile time.
var _ notefetch.Distiller = (*Distiller)(nil)

// Distiller wraps go-readability to isolate the main content of a page.
type Distiller struct{}

// NewDistiller creates a new Distiller.
func NewDistiller() *Distiller {
	return &Distiller{}
}

// Distill processes raw HTML and returns the main content. pageURL, if
// set, lets readability resolve relative links in its output.
func (d *Distiller) Distill(rawHTML string, pageURL string) (*notefetch.DistillResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, notefetch.Errorf(notefetch.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if pageURL != "" {
		parsed, err := url.Parse(pageURL)
		if err != nil {
			return nil, notefetch.Errorf(notefetch.EINVALID, "invalid page URL %q", pageURL)
		}
		u = parsed
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, notefetch.Errorf(notefetch.EPARSE, "readability: %v", err)
	}

	return &notefetch.DistillResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
