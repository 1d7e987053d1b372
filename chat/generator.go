package chat

import (
	"context"
	"strings"

	"github.com/fwojciec/pagechat"
)

const promptPreamble = "You are an AI assistant that helps users understand and get information from website content."

const promptClosing = "Please provide a helpful, accurate answer based on the website content above. " +
	"If the information isn't available in the content, say so clearly. Be conversational and helpful."

// Generator answers questions about a page with a Model.
type Generator struct {
	// Model is nil until credentials are configured.
	Model   pagechat.Model
	Config  pagechat.GenerationConfig
	Context pagechat.ContextPolicy
}

// NewGenerator returns a Generator using the default generation config and
// context policy.
func NewGenerator(model pagechat.Model) *Generator {
	return &Generator{
		Model:   model,
		Config:  pagechat.DefaultGenerationConfig(),
		Context: pagechat.DefaultContextPolicy(),
	}
}

// Generate answers query using page as grounding context.
//
// Returns ECONFIG when no model is set and ENOCONTEXT when page holds no
// usable content; the model is not called in either case. Model failures are
// classified with ClassifyError.
func (g *Generator) Generate(ctx context.Context, query string, page *pagechat.PageContent) (string, error) {
	if g.Model == nil {
		return "", pagechat.Errorf(pagechat.ECONFIG, "Gemini API is not configured")
	}
	if !page.OK() || page.Content == "" {
		return "", pagechat.Errorf(pagechat.ENOCONTEXT, "no website content available")
	}

	prompt := BuildPrompt(g.Context.Build(page), query)
	answer, err := g.Model.Generate(ctx, prompt, g.Config)
	if err != nil {
		return "", ClassifyError(err)
	}
	return answer, nil
}

// BuildPrompt assembles the full prompt from a grounding context block and
// the user's question.
func BuildPrompt(context, query string) string {
	var sb strings.Builder
	sb.WriteString(promptPreamble)
	sb.WriteString("\n\n")
	sb.WriteString(context)
	sb.WriteString("\n\nUser Question: ")
	sb.WriteString(query)
	sb.WriteString("\n\n")
	sb.WriteString(promptClosing)
	return sb.String()
}
