package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/pagechat"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// pageOutput is the structured form of a parsed page.
type pageOutput struct {
	pagechat.PageContent `yaml:",inline"`
	ContextTokens        int `json:"contextTokens,omitempty" yaml:"contextTokens,omitempty"`
}

// writePage prints page in format. A positive tokens count is included.
func writePage(w io.Writer, page *pagechat.PageContent, format string, tokens int) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(pageOutput{PageContent: *page, ContextTokens: tokens}); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pageOutput{PageContent: *page, ContextTokens: tokens})
	default:
		fmt.Fprint(w, pagechat.FormatSummary(page))
		if tokens > 0 {
			message.NewPrinter(language.English).Fprintf(w, "Context tokens: %d\n", tokens)
		}
		return nil
	}
}
