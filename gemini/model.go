package gemini

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagechat"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// Ensure Model implements pagechat.Model at compile time.
var _ pagechat.Model = (*Model)(nil)

// Model implements pagechat.Model using Google Gemini.
type Model struct {
	client *genai.Client
	name   string
}

// New creates a Model that sends requests through client.
func New(client *genai.Client, name string) *Model {
	if name == "" {
		name = DefaultModel
	}
	return &Model{client: client, name: name}
}

// NewModel creates a Gemini API client for apiKey and wraps it in a Model.
func NewModel(ctx context.Context, apiKey, name string) (*Model, error) {
	if apiKey == "" {
		return nil, pagechat.Errorf(pagechat.ECONFIG, "Gemini API key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return New(client, name), nil
}

// Name returns the model identifier.
func (m *Model) Name() string {
	return m.name
}

// Generate sends prompt as a single user turn and returns the response text.
func (m *Model) Generate(ctx context.Context, prompt string, cfg pagechat.GenerationConfig) (string, error) {
	result, err := m.client.Models.GenerateContent(ctx, m.name,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(cfg),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", pagechat.Errorf(pagechat.EINTERNAL, "gemini returned nil result")
	}
	if err := BlockError(result); err != nil {
		return "", err
	}

	return result.Text(), nil
}

var harmCategories = map[pagechat.HarmCategory]genai.HarmCategory{
	pagechat.HarmCategoryHateSpeech:       genai.HarmCategoryHateSpeech,
	pagechat.HarmCategoryDangerousContent: genai.HarmCategoryDangerousContent,
	pagechat.HarmCategorySexuallyExplicit: genai.HarmCategorySexuallyExplicit,
	pagechat.HarmCategoryHarassment:       genai.HarmCategoryHarassment,
}

var blockThresholds = map[pagechat.BlockThreshold]genai.HarmBlockThreshold{
	pagechat.BlockLowAndAbove:    genai.HarmBlockThresholdBlockLowAndAbove,
	pagechat.BlockMediumAndAbove: genai.HarmBlockThresholdBlockMediumAndAbove,
	pagechat.BlockOnlyHigh:       genai.HarmBlockThresholdBlockOnlyHigh,
	pagechat.BlockNone:           genai.HarmBlockThresholdBlockNone,
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Safety settings with an unknown category or threshold are skipped.
func BuildConfig(cfg pagechat.GenerationConfig) *genai.GenerateContentConfig {
	temp := cfg.Temperature
	config := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: cfg.MaxOutputTokens,
	}
	for _, s := range cfg.SafetySettings {
		category, ok := harmCategories[s.Category]
		if !ok {
			continue
		}
		threshold, ok := blockThresholds[s.Threshold]
		if !ok {
			continue
		}
		config.SafetySettings = append(config.SafetySettings, &genai.SafetySetting{
			Category:  category,
			Threshold: threshold,
		})
	}
	return config
}

// BlockError reports a response withheld by safety filtering. The error
// message always names SAFETY so callers can classify it.
func BlockError(resp *genai.GenerateContentResponse) error {
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return fmt.Errorf("prompt blocked by SAFETY filter: %s", fb.BlockReason)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return fmt.Errorf("response blocked: finish reason %s", genai.FinishReasonSafety)
	}
	return nil
}
