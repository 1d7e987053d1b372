package pagechat

import "context"

// Model is a black-box text-completion provider.
type Model interface {
	// Generate submits prompt with the given configuration and returns the
	// provider's text verbatim. Errors are opaque provider errors.
	Generate(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
}

// HarmCategory is a class of content the provider can filter.
type HarmCategory string

// Harm categories with configured thresholds.
const (
	HarmCategoryHateSpeech       HarmCategory = "hate_speech"
	HarmCategoryDangerousContent HarmCategory = "dangerous_content"
	HarmCategorySexuallyExplicit HarmCategory = "sexually_explicit"
	HarmCategoryHarassment       HarmCategory = "harassment"
)

// BlockThreshold is the probability at which content in a category is blocked.
type BlockThreshold string

// Block thresholds.
const (
	BlockLowAndAbove    BlockThreshold = "block_low_and_above"
	BlockMediumAndAbove BlockThreshold = "block_medium_and_above"
	BlockOnlyHigh       BlockThreshold = "block_only_high"
	BlockNone           BlockThreshold = "block_none"
)

// SafetySetting sets the block threshold for one harm category.
type SafetySetting struct {
	Category  HarmCategory
	Threshold BlockThreshold
}

// GenerationConfig is the static policy sent with every provider request.
type GenerationConfig struct {
	Temperature     float32
	MaxOutputTokens int32
	SafetySettings  []SafetySetting
}

// DefaultGenerationConfig returns the generation policy used for answers.
func DefaultGenerationConfig() GenerationConfig {
	return GenerationConfig{
		Temperature:     0.7,
		MaxOutputTokens: 1000,
		SafetySettings: []SafetySetting{
			{Category: HarmCategoryHateSpeech, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryDangerousContent, Threshold: BlockMediumAndAbove},
			{Category: HarmCategorySexuallyExplicit, Threshold: BlockMediumAndAbove},
			{Category: HarmCategoryHarassment, Threshold: BlockMediumAndAbove},
		},
	}
}
