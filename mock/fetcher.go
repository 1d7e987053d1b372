package mock

import (
	"context"

	"github.com/fwojciec/pagechat"
)

var _ pagechat.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagechat.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}
