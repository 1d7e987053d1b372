package pagechat

import "context"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs a single GET request and returns the response body.
	// Non-2xx responses and network failures are returned as errors.
	// There are no retries; the context controls cancellation.
	Fetch(ctx context.Context, url string) (html []byte, err error)
}
