// Package config loads pagechat settings from a YAML file.
//
// Values are layered: built-in defaults, then the file, then whatever the
// caller applies from flags and environment. The API key is not a file
// setting.
package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/gemini"
	pagechathttp "github.com/fwojciec/pagechat/http"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "pagechat"

// FileName is the config file name inside the app directory.
const FileName = "config.yaml"

// Config holds all file-configurable settings.
type Config struct {
	Model             string        `yaml:"model"`
	FetchTimeout      time.Duration `yaml:"fetch_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	UserAgent         string        `yaml:"user_agent"`
	RequestsPerMinute int           `yaml:"requests_per_minute"` // 0 is unlimited
	LogLevel          string        `yaml:"log_level"`
	Limits            Limits        `yaml:"limits"`
}

// Limits overrides extraction and grounding context bounds.
type Limits struct {
	MaxContentChars     int `yaml:"max_content_chars"`
	MaxHeadings         int `yaml:"max_headings"`
	MaxParagraphs       int `yaml:"max_paragraphs"`
	ContextHeadings     int `yaml:"context_headings"`
	ContextContentChars int `yaml:"context_content_chars"`
}

// Default returns the built-in configuration.
func Default() *Config {
	extract := pagechat.DefaultExtractLimits()
	grounding := pagechat.DefaultContextPolicy()
	return &Config{
		Model:        gemini.DefaultModel,
		FetchTimeout: pagechathttp.DefaultFetchTimeout,
		MaxBodyBytes: pagechathttp.DefaultMaxBodySize,
		UserAgent:    pagechathttp.DefaultUserAgent,
		LogLevel:     "warn",
		Limits: Limits{
			MaxContentChars:     extract.MaxContentChars,
			MaxHeadings:         extract.MaxHeadings,
			MaxParagraphs:       extract.MaxParagraphs,
			ContextHeadings:     grounding.MaxHeadings,
			ContextContentChars: grounding.MaxContentChars,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/pagechat/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Load reads the file at path over the defaults and validates the result.
// An empty path means DefaultPath, which may be absent; an explicit path
// must exist; a missing one is ENOTFOUND.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	switch {
	case errors.Is(err, os.ErrNotExist) && !explicit:
		return cfg, nil
	case errors.Is(err, os.ErrNotExist):
		return nil, pagechat.Errorf(pagechat.ENOTFOUND, "configuration file not found: %s", path)
	case err != nil:
		return nil, pagechat.Errorf(pagechat.ECONFIG, "read %s: %v", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, pagechat.Errorf(pagechat.ECONFIG, "parse %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings no component can work with.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return pagechat.Errorf(pagechat.ECONFIG, "fetch_timeout must be positive")
	}
	if c.MaxBodyBytes <= 0 {
		return pagechat.Errorf(pagechat.ECONFIG, "max_body_bytes must be positive")
	}
	if c.RequestsPerMinute < 0 {
		return pagechat.Errorf(pagechat.ECONFIG, "requests_per_minute must not be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	limits := map[string]int{
		"max_content_chars":     c.Limits.MaxContentChars,
		"max_headings":          c.Limits.MaxHeadings,
		"max_paragraphs":        c.Limits.MaxParagraphs,
		"context_headings":      c.Limits.ContextHeadings,
		"context_content_chars": c.Limits.ContextContentChars,
	}
	for name, v := range limits {
		if v <= 0 {
			return pagechat.Errorf(pagechat.ECONFIG, "limits.%s must be positive", name)
		}
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, pagechat.Errorf(pagechat.ECONFIG, "invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// ExtractLimits returns the extraction limits with file overrides applied.
func (c *Config) ExtractLimits() pagechat.ExtractLimits {
	limits := pagechat.DefaultExtractLimits()
	limits.MaxContentChars = c.Limits.MaxContentChars
	limits.MaxHeadings = c.Limits.MaxHeadings
	limits.MaxParagraphs = c.Limits.MaxParagraphs
	return limits
}

// ContextPolicy returns the grounding context policy with file overrides
// applied.
func (c *Config) ContextPolicy() pagechat.ContextPolicy {
	return pagechat.ContextPolicy{
		MaxHeadings:     c.Limits.ContextHeadings,
		MaxContentChars: c.Limits.ContextContentChars,
	}
}
