package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/chat"
	"github.com/fwojciec/pagechat/config"
	"github.com/fwojciec/pagechat/gemini"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/fwojciec/pagechat/htmltomarkdown"
	pagechathttp "github.com/fwojciec/pagechat/http"
	pcslog "github.com/fwojciec/pagechat/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Input for the interactive chat loop.
	Stdin io.Reader

	// Overrides for end-to-end testing. Nil values are built from config.
	Fetcher      pagechat.Fetcher
	NewModel     chat.ModelFactory
	TokenCounter pagechat.TokenCounter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagechat"),
		kong.Description("Chat with the content of a web page using Gemini."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagechat --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := cli.Globals.load()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pagechat.ErrorMessage(err))
		if cli.Config == "" {
			fmt.Fprintf(stderr, "Hint: check %s or pass --config\n", config.DefaultPath())
		}
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = pagechathttp.NewFetcher(
			pagechathttp.WithTimeout(cfg.FetchTimeout),
			pagechathttp.WithUserAgent(cfg.UserAgent),
			pagechathttp.WithMaxBodySize(cfg.MaxBodyBytes),
		)
	}
	extractor := goquery.NewExtractor(goquery.WithLimits(cfg.ExtractLimits()))

	deps.Extractor = pcslog.NewLoggingExtractor(extractor, logger)
	deps.Cleaner = extractor
	deps.NewConverter = func(baseURL string) pagechat.Converter {
		return htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL(baseURL))
	}
	deps.Parser = chat.NewParser(pcslog.NewLoggingFetcher(fetcher, logger), deps.Extractor)
	deps.Context = cfg.ContextPolicy()
	deps.APIKey = cli.APIKey

	newModel := m.NewModel
	if newModel == nil {
		newModel = func(ctx context.Context, apiKey string) (pagechat.Model, error) {
			gm, err := gemini.NewModel(ctx, apiKey, cfg.Model)
			if err != nil {
				return nil, err
			}
			return gm, nil
		}
	}
	deps.Session = chat.NewSession(deps.Parser, wrapModel(newModel, cfg, logger),
		chat.WithLogger(logger),
		chat.WithContextPolicy(deps.Context),
	)

	if cli.Parse.Tokens {
		deps.Tokens = m.TokenCounter
		if deps.Tokens == nil {
			tc, err := gemini.NewTokenCounter(cfg.Model)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", pagechat.ErrorMessage(err))
				return err
			}
			deps.Tokens = tc
		}
	}

	return kongCtx.Run(deps)
}

// wrapModel adds logging and, when configured, client-side rate limiting to
// every model the factory builds.
func wrapModel(newModel chat.ModelFactory, cfg *config.Config, logger *slog.Logger) chat.ModelFactory {
	return func(ctx context.Context, apiKey string) (pagechat.Model, error) {
		model, err := newModel(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		model = pcslog.NewLoggingModel(model, logger)
		if cfg.RequestsPerMinute > 0 {
			model = chat.NewLimitedModel(model, chat.PerMinute(cfg.RequestsPerMinute), 1)
		}
		return model, nil
	}
}
