package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/chat"
	"github.com/fwojciec/pagechat/config"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	Parser       pagechat.Parser
	Extractor    pagechat.Extractor
	Cleaner      HTMLCleaner
	NewConverter func(baseURL string) pagechat.Converter
	Tokens       pagechat.TokenCounter
	Context      pagechat.ContextPolicy
	Session      *chat.Session
	APIKey       string
}

// HTMLCleaner strips boilerplate elements from a page, returning body markup.
type HTMLCleaner interface {
	CleanHTML(html []byte) (string, error)
}

// Globals are flags accepted by every command.
type Globals struct {
	Config   string        `type:"path" env:"PAGECHAT_CONFIG" help:"Config file (default: $XDG_CONFIG_HOME/pagechat/config.yaml)"`
	LogLevel string        `name:"log-level" help:"Log level: debug, info, warn or error"`
	APIKey   string        `name:"api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model    string        `help:"Gemini model name"`
	Timeout  time.Duration `help:"HTTP fetch timeout"`
}

// load reads the config file and applies flag overrides.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	if g.Model != "" {
		cfg.Model = g.Model
	}
	if g.Timeout > 0 {
		cfg.FetchTimeout = g.Timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Parse   ParseCmd   `cmd:"" help:"Parse a web page and print its summary"`
	Extract ExtractCmd `cmd:"" help:"Extract content from a local HTML file"`
	Ask     AskCmd     `cmd:"" help:"Ask one question about a web page"`
	Chat    ChatCmd    `cmd:"" help:"Chat interactively about a web page"`
}

// ParseCmd is the "parse" subcommand.
type ParseCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Format string `short:"f" enum:"text,yaml,json" default:"text" help:"Output format (text, yaml, json)"`
	Tokens bool   `help:"Count Gemini tokens in the grounding context"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	File     string `arg:"" help:"HTML file, or - for stdin"`
	URL      string `help:"Source URL recorded in the result and used to resolve links"`
	Markdown bool   `short:"m" help:"Print the cleaned page as Markdown"`
	Format   string `short:"f" enum:"text,yaml,json" default:"text" help:"Output format (text, yaml, json)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Question string `arg:"" help:"Question about the page"`
	Raw      bool   `help:"Print the answer without Markdown rendering"`
}

// ChatCmd is the "chat" subcommand.
type ChatCmd struct {
	URL string `arg:"" optional:"" help:"Page URL to load first"`
	Raw bool   `help:"Print answers without Markdown rendering"`
}
