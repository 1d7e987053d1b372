package pagechat

import "context"

// Status reports whether a parse produced content.
type Status string

// Status values for PageContent.
const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// NoTitle is the title of a page without a <title> element.
const NoTitle = "No Title"

// TruncationMarker is appended to PageContent.Content when the normalized
// text exceeded ExtractLimits.MaxContentChars.
const TruncationMarker = "... [Content truncated]"

// PageContent is the structured, size-bounded extraction result for one page.
// It is immutable once produced; parsing again yields a new value.
//
// All lengths are measured in characters (Unicode code points).
type PageContent struct {
	URL         string   `json:"url" yaml:"url"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Headings    []string `json:"headings" yaml:"headings"`
	Paragraphs  []string `json:"paragraphs" yaml:"paragraphs"`

	// Content is the whitespace-normalized text of the whole page.
	Content   string `json:"content" yaml:"content"`
	Truncated bool   `json:"truncated" yaml:"truncated"`

	// Derived from Content as stored, after truncation.
	WordCount   int    `json:"wordCount" yaml:"wordCount"`
	CharCount   int    `json:"charCount" yaml:"charCount"`
	ContentHash string `json:"contentHash" yaml:"contentHash"`

	Status       Status `json:"status" yaml:"status"`
	ErrorCode    string `json:"errorCode,omitempty" yaml:"errorCode,omitempty"`
	ErrorMessage string `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether p holds successfully extracted content.
func (p *PageContent) OK() bool {
	return p != nil && p.Status == StatusSuccess
}

// Err returns the failure recorded on an error page as an application
// error, or nil for a successful page.
func (p *PageContent) Err() error {
	if p == nil || p.Status != StatusError {
		return nil
	}
	code := p.ErrorCode
	if code == "" {
		code = EINTERNAL
	}
	return &Error{Code: code, Message: p.ErrorMessage}
}

// NewErrorPage returns a PageContent describing a failed parse of url.
// Content fields are left empty.
func NewErrorPage(url string, err error) *PageContent {
	return &PageContent{
		URL:          url,
		Status:       StatusError,
		ErrorCode:    ErrorCode(err),
		ErrorMessage: ErrorMessage(err),
	}
}

// ExtractLimits bounds the size of an extracted page.
type ExtractLimits struct {
	MaxContentChars   int
	MaxHeadings       int
	MaxHeadingChars   int // headings must be strictly shorter
	MaxParagraphs     int
	MinParagraphChars int // paragraphs must be strictly longer
}

// DefaultExtractLimits returns the limits applied when none are configured.
func DefaultExtractLimits() ExtractLimits {
	return ExtractLimits{
		MaxContentChars:   50000,
		MaxHeadings:       20,
		MaxHeadingChars:   200,
		MaxParagraphs:     30,
		MinParagraphChars: 50,
	}
}

// Parser turns a URL into PageContent by fetching and extracting it.
type Parser interface {
	// Parse fetches url and extracts its content.
	// Returns ETRANSPORT or EINVALID when the page could not be retrieved
	// and EPARSE when it could not be parsed.
	Parse(ctx context.Context, url string) (*PageContent, error)
}
