package chat

import (
	"context"
	"time"

	"github.com/fwojciec/pagechat"
	"golang.org/x/time/rate"
)

// Ensure LimitedModel implements pagechat.Model at compile time.
var _ pagechat.Model = (*LimitedModel)(nil)

// LimitedModel throttles calls to the wrapped model on the client side.
// It only waits; failed calls are never retried.
type LimitedModel struct {
	next    pagechat.Model
	limiter *rate.Limiter
}

// NewLimitedModel wraps next with a token-bucket limiter.
func NewLimitedModel(next pagechat.Model, limit rate.Limit, burst int) *LimitedModel {
	return &LimitedModel{next: next, limiter: rate.NewLimiter(limit, burst)}
}

// PerMinute converts a requests-per-minute budget into a rate.Limit.
// Zero or negative values mean unlimited.
func PerMinute(n int) rate.Limit {
	if n <= 0 {
		return rate.Inf
	}
	return rate.Every(time.Minute / time.Duration(n))
}

// Generate waits for the limiter, then delegates to the wrapped model.
func (m *LimitedModel) Generate(ctx context.Context, prompt string, cfg pagechat.GenerationConfig) (string, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return m.next.Generate(ctx, prompt, cfg)
}
