package pagechat

// Extractor turns raw HTML into PageContent.
type Extractor interface {
	// Extract parses html and returns its structured content.
	// Malformed markup is not an error: missing parts degrade to their
	// empty values. An error is returned only if the input cannot be
	// read or parsed at all.
	Extract(html []byte, sourceURL string) (*PageContent, error)
}
