// Package chat implements the question-answering loop over a single parsed
// web page: fetching and extracting it, building prompts, calling the model
// and holding per-session state.
package chat

import (
	"context"
	"net/url"

	"github.com/fwojciec/pagechat"
	"golang.org/x/sync/singleflight"
)

// Ensure Parser implements pagechat.Parser at compile time.
var _ pagechat.Parser = (*Parser)(nil)

// Parser composes a Fetcher and an Extractor. Concurrent calls for the same
// URL share a single fetch.
type Parser struct {
	fetcher   pagechat.Fetcher
	extractor pagechat.Extractor
	group     singleflight.Group
}

// NewParser creates a new Parser.
func NewParser(fetcher pagechat.Fetcher, extractor pagechat.Extractor) *Parser {
	return &Parser{fetcher: fetcher, extractor: extractor}
}

// Parse fetches rawURL and extracts its content.
//
// A shared fetch is not cancelled by any one caller; each caller stops
// waiting when its own ctx is done. The fetcher's timeout bounds a fetch
// that every caller has abandoned.
func (p *Parser) Parse(ctx context.Context, rawURL string) (*pagechat.PageContent, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan(rawURL, func() (any, error) {
		html, err := p.fetcher.Fetch(flightCtx, rawURL)
		if err != nil {
			return nil, pagechat.Errorf(pagechat.ETRANSPORT, "Request failed: %v", err)
		}
		page, err := p.extractor.Extract(html, rawURL)
		if err != nil {
			return nil, pagechat.Errorf(pagechat.EPARSE, "Parsing failed: %s", pagechat.ErrorMessage(err))
		}
		return page, nil
	})

	select {
	case <-ctx.Done():
		return nil, pagechat.Errorf(pagechat.ETRANSPORT, "Request failed: %v", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*pagechat.PageContent), nil
	}
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return pagechat.Errorf(pagechat.EINVALID, "Request failed: invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pagechat.Errorf(pagechat.EINVALID, "Request failed: invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return pagechat.Errorf(pagechat.EINVALID, "Request failed: invalid URL %q: missing host", rawURL)
	}
	return nil
}
