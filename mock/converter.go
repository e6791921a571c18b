package mock

import "github.com/fwojciec/adscout"

var _ adscout.Converter = (*Converter)(nil)

// Converter is a mock implementation of adscout.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
