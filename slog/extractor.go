package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagechat"
)

// Ensure LoggingExtractor implements pagechat.Extractor.
var _ pagechat.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   pagechat.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagechat.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html []byte, sourceURL string) (page *pagechat.PageContent, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", sourceURL, "bytes", len(html)}
		if page != nil {
			attrs = append(attrs,
				"headings", len(page.Headings),
				"paragraphs", len(page.Paragraphs),
				"chars", page.CharCount,
				"truncated", page.Truncated,
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Debug("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, sourceURL)
}
