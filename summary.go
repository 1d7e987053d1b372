package pagechat

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Clip lengths used by FormatSummary.
const (
	summaryTitleChars       = 50
	summaryDescriptionChars = 100
	summaryHeadingChars     = 60
	summaryHeadings         = 5
	summaryParagraphChars   = 300
)

// FormatSummary renders a short human-readable overview of page: its title,
// size counts, description, leading headings and first paragraph.
// A failed page renders as its error message.
func FormatSummary(page *PageContent) string {
	if page == nil {
		return ""
	}
	if !page.OK() {
		return "Error: " + page.ErrorMessage + "\n"
	}

	p := message.NewPrinter(language.English)

	var sb strings.Builder
	p.Fprintf(&sb, "Title:       %s\n", clip(page.Title, summaryTitleChars))
	p.Fprintf(&sb, "URL:         %s\n", page.URL)
	p.Fprintf(&sb, "Words:       %d\n", page.WordCount)
	p.Fprintf(&sb, "Characters:  %d\n", page.CharCount)
	p.Fprintf(&sb, "Headings:    %d\n", len(page.Headings))
	p.Fprintf(&sb, "Paragraphs:  %d\n", len(page.Paragraphs))
	if page.Truncated {
		sb.WriteString("Content was truncated.\n")
	}

	if page.Description != "" {
		sb.WriteString("\nDescription:\n  ")
		sb.WriteString(clip(page.Description, summaryDescriptionChars))
		sb.WriteString("\n")
	}

	if len(page.Headings) > 0 {
		sb.WriteString("\nMain headings:\n")
		for _, h := range page.Headings[:min(len(page.Headings), summaryHeadings)] {
			sb.WriteString("  • ")
			sb.WriteString(clip(h, summaryHeadingChars))
			sb.WriteString("\n")
		}
	}

	if len(page.Paragraphs) > 0 {
		sb.WriteString("\nSample content:\n  ")
		sb.WriteString(clip(page.Paragraphs[0], summaryParagraphChars))
		sb.WriteString("\n")
	}

	return sb.String()
}

// clip shortens s to n characters, marking the cut with an ellipsis.
func clip(s string, n int) string {
	cut := TruncateChars(s, n)
	if cut == s {
		return s
	}
	return cut + "..."
}
