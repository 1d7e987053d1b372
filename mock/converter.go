package mock

import "github.com/fwojciec/pagechat"

var _ pagechat.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagechat.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
