package chat

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fwojciec/pagechat"
	"github.com/google/uuid"
)

// ModelFactory builds a Model for an API key.
type ModelFactory func(ctx context.Context, apiKey string) (pagechat.Model, error)

// Session owns the state of one conversation: credentials, the current page
// and the turns exchanged about it.
//
// A Session is safe for concurrent use. Parses are serialised, and no lock
// is held while the network is in use.
type Session struct {
	id       string
	parser   pagechat.Parser
	newModel ModelFactory
	logger   *slog.Logger
	policy   pagechat.ContextPolicy
	config   pagechat.GenerationConfig

	parseMu sync.Mutex

	mu      sync.Mutex
	model   pagechat.Model
	page    *pagechat.PageContent
	history []pagechat.Turn
	epoch   uint64 // bumped whenever page or history is replaced
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger. Defaults to discarding output.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithContextPolicy sets the limits on grounding context per question.
func WithContextPolicy(policy pagechat.ContextPolicy) SessionOption {
	return func(s *Session) {
		s.policy = policy
	}
}

// NewSession creates a new Session with no credentials and no page.
func NewSession(parser pagechat.Parser, newModel ModelFactory, opts ...SessionOption) *Session {
	s := &Session{
		id:       uuid.NewString(),
		parser:   parser,
		newModel: newModel,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		policy:   pagechat.DefaultContextPolicy(),
		config:   pagechat.DefaultGenerationConfig(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session", s.id)
	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Configure builds a model for apiKey and makes it the session's model.
func (s *Session) Configure(ctx context.Context, apiKey string) error {
	if strings.TrimSpace(apiKey) == "" {
		return pagechat.Errorf(pagechat.ECONFIG, "Gemini API key required")
	}
	model, err := s.newModel(ctx, apiKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.model = model
	s.mu.Unlock()

	s.logger.Info("model configured")
	return nil
}

// Configured reports whether a model is available.
func (s *Session) Configured() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model != nil
}

// ParseURL fetches and extracts url. It always returns a page.
//
// On success the page becomes the session's current page and the history is
// cleared. On failure the returned page has StatusError and the previous
// page and history are kept.
func (s *Session) ParseURL(ctx context.Context, url string) *pagechat.PageContent {
	s.parseMu.Lock()
	defer s.parseMu.Unlock()

	page, err := s.parser.Parse(ctx, url)
	if err == nil && page == nil {
		err = pagechat.Errorf(pagechat.EINTERNAL, "Parsing failed: no content returned")
	}
	if err != nil {
		s.logger.Warn("parse failed", "url", url, "err", err)
		return pagechat.NewErrorPage(url, err)
	}
	if !page.OK() {
		return page
	}

	s.mu.Lock()
	prev := s.page
	s.page = page
	s.history = nil
	s.epoch++
	s.mu.Unlock()

	s.logger.Info("page replaced",
		"url", page.URL,
		"hash", page.ContentHash,
		"unchanged", prev != nil && prev.ContentHash == page.ContentHash,
	)
	return page
}

// Ask answers query about the current page. The returned text is the answer
// or, when err is non-nil, the message to show in its place.
//
// The exchange is recorded in the history whenever the model was called,
// unless the page or history was replaced while the call was in flight.
func (s *Session) Ask(ctx context.Context, query string) (string, error) {
	if strings.TrimSpace(query) == "" {
		err := pagechat.Errorf(pagechat.EINVALID, "question required")
		return pagechat.ReplyMessage(err), err
	}

	s.mu.Lock()
	gen := &Generator{Model: s.model, Config: s.config, Context: s.policy}
	page := s.page
	epoch := s.epoch
	s.mu.Unlock()

	answer, err := gen.Generate(ctx, query, page)
	reply := answer
	if err != nil {
		reply = pagechat.ReplyMessage(err)
	}

	switch pagechat.ErrorCode(err) {
	case pagechat.ECONFIG, pagechat.ENOCONTEXT:
		return reply, err
	}
	if ctx.Err() != nil {
		return reply, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.logger.Info("dropped stale answer", "url", page.URL)
		return reply, err
	}
	s.history = append(s.history,
		pagechat.Turn{Role: pagechat.RoleUser, Message: query},
		pagechat.Turn{Role: pagechat.RoleAssistant, Message: reply},
	)
	return reply, err
}

// ClearHistory discards all turns but keeps the page and credentials.
func (s *Session) ClearHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
	s.epoch++
}

// Reset returns the session to its initial state: no page, no history and
// no credentials.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = nil
	s.page = nil
	s.history = nil
	s.epoch++
}

// Page returns the current page, or nil if none has been parsed.
func (s *Session) Page() *pagechat.PageContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page
}

// History returns a copy of the recorded turns in order.
func (s *Session) History() []pagechat.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := make([]pagechat.Turn, len(s.history))
	copy(history, s.history)
	return history
}
