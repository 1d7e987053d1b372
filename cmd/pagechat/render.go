package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// answerWidth is the wrap width for rendered answers.
const answerWidth = 80

// render formats Markdown for the terminal. Raw output, or any rendering
// failure, returns md unchanged.
func render(md string, raw bool) string {
	if raw {
		return md
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(answerWidth),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
