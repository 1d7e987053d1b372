package mock

import (
	"context"

	"github.com/fwojciec/pagechat"
)

var _ pagechat.Parser = (*Parser)(nil)

// Parser is a mock implementation of pagechat.Parser.
type Parser struct {
	ParseFn func(ctx context.Context, url string) (*pagechat.PageContent, error)
}

func (p *Parser) Parse(ctx context.Context, url string) (*pagechat.PageContent, error) {
	return p.ParseFn(ctx, url)
}
