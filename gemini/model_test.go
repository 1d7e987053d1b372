package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildConfig_SetsTemperatureAndTokens(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagechat.DefaultGenerationConfig())

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.7, *config.Temperature, 0.001)
	assert.Equal(t, int32(1000), config.MaxOutputTokens)
}

func TestBuildConfig_SetsSafetySettings(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagechat.DefaultGenerationConfig())

	require.Len(t, config.SafetySettings, 4)
	categories := make([]genai.HarmCategory, 0, len(config.SafetySettings))
	for _, s := range config.SafetySettings {
		assert.Equal(t, genai.HarmBlockThresholdBlockMediumAndAbove, s.Threshold)
		categories = append(categories, s.Category)
	}
	assert.ElementsMatch(t, []genai.HarmCategory{
		genai.HarmCategoryHateSpeech,
		genai.HarmCategoryDangerousContent,
		genai.HarmCategorySexuallyExplicit,
		genai.HarmCategoryHarassment,
	}, categories)
}

func TestBuildConfig_SkipsUnknownSettings(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig(pagechat.GenerationConfig{
		SafetySettings: []pagechat.SafetySetting{
			{Category: "violence", Threshold: pagechat.BlockNone},
			{Category: pagechat.HarmCategoryHarassment, Threshold: "sometimes"},
			{Category: pagechat.HarmCategoryHarassment, Threshold: pagechat.BlockOnlyHigh},
		},
	})

	require.Len(t, config.SafetySettings, 1)
	assert.Equal(t, genai.HarmBlockThresholdBlockOnlyHigh, config.SafetySettings[0].Threshold)
}

func TestBlockError(t *testing.T) {
	t.Parallel()

	t.Run("nil for normal response", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonStop}},
		}

		assert.NoError(t, gemini.BlockError(resp))
	})

	t.Run("reports blocked prompt", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason: genai.BlockedReasonSafety,
			},
		}

		err := gemini.BlockError(resp)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SAFETY")
	})

	t.Run("reports blocked prompt for non-safety reason", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{
				BlockReason: genai.BlockedReasonOther,
			},
		}

		err := gemini.BlockError(resp)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SAFETY")
	})

	t.Run("reports candidate stopped for safety", func(t *testing.T) {
		t.Parallel()

		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}},
		}

		err := gemini.BlockError(resp)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "SAFETY")
	})
}

func TestNewModel_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewModel(context.Background(), "", gemini.DefaultModel)

	require.Error(t, err)
	assert.Equal(t, pagechat.ECONFIG, pagechat.ErrorCode(err))
}

func TestNew_DefaultsModelName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gemini.DefaultModel, gemini.New(nil, "").Name())
	assert.Equal(t, "gemini-2.5-flash", gemini.New(nil, "gemini-2.5-flash").Name())
}
