package slog

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagechat"
)

// Ensure LoggingModel implements pagechat.Model.
var _ pagechat.Model = (*LoggingModel)(nil)

// LoggingModel wraps a Model with logging. Prompt and answer text are not
// logged, only their sizes.
type LoggingModel struct {
	next   pagechat.Model
	logger *slog.Logger
}

// NewLoggingModel creates a new LoggingModel.
func NewLoggingModel(next pagechat.Model, logger *slog.Logger) *LoggingModel {
	return &LoggingModel{next: next, logger: logger}
}

// Generate delegates to the wrapped model and logs the call.
func (m *LoggingModel) Generate(ctx context.Context, prompt string, cfg pagechat.GenerationConfig) (answer string, err error) {
	defer func(begin time.Time) {
		m.logger.Info("generate",
			"prompt_chars", utf8.RuneCountInString(prompt),
			"answer_chars", utf8.RuneCountInString(answer),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Generate(ctx, prompt, cfg)
}
