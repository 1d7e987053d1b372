package main_test

import (
	"bytes"
	"context"
	"strings"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/chat"
	main "github.com/fwojciec/pagechat/cmd/pagechat"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/fwojciec/pagechat/htmltomarkdown"
	"github.com/fwojciec/pagechat/mock"
)

const demoHTML = `<html><head><title>Demo</title><meta name="description" content="A demo page"></head>
<body><nav>Home</nav><h1>Welcome</h1>
<p>This paragraph has more than fifty characters to qualify for extraction.</p>
<p>Read the <a href="/guide">guide</a> to get started with the product today.</p>
</body></html>`

// demoParser parses every URL into the demo page, except failing ones.
func demoParser(failing ...string) pagechat.Parser {
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) ([]byte, error) {
			for _, f := range failing {
				if f == url {
					return nil, pagechat.Errorf(pagechat.ETRANSPORT, "HTTP 404 for %s", url)
				}
			}
			return []byte(demoHTML), nil
		},
	}
	return chat.NewParser(fetcher, goquery.NewExtractor())
}

func staticModel(answer string, err error) *mock.Model {
	return &mock.Model{
		GenerateFn: func(context.Context, string, pagechat.GenerationConfig) (string, error) {
			return answer, err
		},
	}
}

type testDeps struct {
	*main.Dependencies
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newDeps wires dependencies the way Main.Run does, with model calls served
// by model.
func newDeps(parser pagechat.Parser, model pagechat.Model, stdin string) *testDeps {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	extractor := goquery.NewExtractor()
	factory := func(context.Context, string) (pagechat.Model, error) {
		return model, nil
	}
	return &testDeps{
		Dependencies: &main.Dependencies{
			Ctx:       context.Background(),
			Stdin:     strings.NewReader(stdin),
			Stdout:    stdout,
			Stderr:    stderr,
			Parser:    parser,
			Extractor: extractor,
			Cleaner:   extractor,
			NewConverter: func(baseURL string) pagechat.Converter {
				return htmltomarkdown.NewConverter(htmltomarkdown.WithBaseURL(baseURL))
			},
			Context: pagechat.DefaultContextPolicy(),
			Session: chat.NewSession(parser, factory),
			APIKey:  "test-key",
		},
		stdout: stdout,
		stderr: stderr,
	}
}
