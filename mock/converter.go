package mock

import "github.com/fwojciec/notefetch"

var _ notefetch.Converter = (*Converter)(nil)

// Converter is a mock implementation of notefetch.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
