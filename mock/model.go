package mock

import (
	"context"

	"github.com/fwojciec/pagechat"
)

var _ pagechat.Model = (*Model)(nil)

// Model is a mock implementation of pagechat.Model.
type Model struct {
	GenerateFn func(ctx context.Context, prompt string, cfg pagechat.GenerationConfig) (string, error)
}

func (m *Model) Generate(ctx context.Context, prompt string, cfg pagechat.GenerationConfig) (string, error) {
	return m.GenerateFn(ctx, prompt, cfg)
}
