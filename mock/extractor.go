package mock

import "github.com/fwojciec/pagechat"

var _ pagechat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagechat.Extractor.
type Extractor struct {
	ExtractFn func(html []byte, sourceURL string) (*pagechat.PageContent, error)
}

func (e *Extractor) Extract(html []byte, sourceURL string) (*pagechat.PageContent, error) {
	return e.ExtractFn(html, sourceURL)
}
