package pagechat

import "context"

// TokenCounter reports how many model tokens a grounding context occupies,
// so its size can be shown before any question is sent.
type TokenCounter interface {
	// CountTokens returns the token count of text. Empty text counts zero.
	CountTokens(ctx context.Context, text string) (int, error)
}
