package pagechat

import (
	"fmt"
	"strings"
)

// ContextPolicy bounds the grounding context built for each query.
// Its limits are independent of ExtractLimits and tighter, because the
// context is rebuilt and sent to the provider on every query.
type ContextPolicy struct {
	MaxHeadings     int
	MaxContentChars int
}

// DefaultContextPolicy returns the policy used when none is configured.
func DefaultContextPolicy() ContextPolicy {
	return ContextPolicy{
		MaxHeadings:     10,
		MaxContentChars: 10000,
	}
}

// BuildContext formats page as grounding context using DefaultContextPolicy.
func BuildContext(page *PageContent) string {
	return DefaultContextPolicy().Build(page)
}

// Build formats page as a grounding context block: title, URL, description,
// the leading headings as bullets and the leading part of the content.
// Headings and content past the policy limits are dropped silently.
func (p ContextPolicy) Build(page *PageContent) string {
	if page == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Website Information:\n")
	fmt.Fprintf(&sb, "- Title: %s\n", page.Title)
	fmt.Fprintf(&sb, "- URL: %s\n", page.URL)
	fmt.Fprintf(&sb, "- Description: %s\n", page.Description)

	sb.WriteString("\nMain headings from the website:\n")
	headings := page.Headings
	if len(headings) > p.MaxHeadings {
		headings = headings[:max(p.MaxHeadings, 0)]
	}
	for _, h := range headings {
		sb.WriteString("• ")
		sb.WriteString(h)
		sb.WriteString("\n")
	}

	sb.WriteString("\nWebsite Content:\n")
	sb.WriteString(TruncateChars(page.Content, p.MaxContentChars))
	return sb.String()
}

// TruncateChars returns the first n characters of s.
func TruncateChars(s string, n int) string {
	if n <= 0 {
		return ""
	}
	// Byte length bounds character count, so short strings need no scan.
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
