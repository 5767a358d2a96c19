package copilot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

func TestBuildPromptStepInstruction(t *testing.T) {
	req := &entity.CopilotRequest{Step: 3}

	prompt := BuildPrompt(req)

	require.Len(t, prompt.System, 1)
	assert.Equal(t, stepInstructions[3], prompt.System[0].Text)
	require.NotNil(t, prompt.System[0].CacheControl)
	assert.Equal(t, entity.CacheEphemeral, prompt.System[0].CacheControl.Type)
	assert.Equal(t, entity.AnthropicVersion, prompt.AnthropicVersion)
	assert.Equal(t, maxOutputTokens, prompt.MaxTokens)
}

func TestBuildPromptUnknownStepFallsBack(t *testing.T) {
	prompt := BuildPrompt(&entity.CopilotRequest{Step: 99})

	require.Len(t, prompt.System, 1)
	assert.Equal(t, fallbackInstruction, prompt.System[0].Text)
}

func TestBuildPromptBlockOrder(t *testing.T) {
	req := &entity.CopilotRequest{
		Step: 1,
		FormData: map[string]any{
			"title": "Clean rivers",
		},
		Context: []string{"Step 1 of 7", "Basics"},
		Messages: []entity.ConversationTurn{
			{Role: "user", Content: "How do I scope this?"},
			{Role: "assistant", Content: "Start with one measurable goal."},
		},
	}

	prompt := BuildPrompt(req)

	require.Len(t, prompt.Messages, 5)

	assert.Equal(t, "user", prompt.Messages[0].Role)
	assert.Equal(t, "Form Data:\ntitle: Clean rivers", prompt.Messages[0].Content[0].Text)
	assert.NotNil(t, prompt.Messages[0].Content[0].CacheControl)

	assert.Equal(t, "user", prompt.Messages[1].Role)
	assert.Equal(t, "Context: Step 1 of 7 Basics", prompt.Messages[1].Content[0].Text)
	assert.NotNil(t, prompt.Messages[1].Content[0].CacheControl)

	assert.Equal(t, "user", prompt.Messages[2].Role)
	assert.Equal(t, "How do I scope this?", prompt.Messages[2].Content[0].Text)
	assert.Nil(t, prompt.Messages[2].Content[0].CacheControl)

	assert.Equal(t, "assistant", prompt.Messages[3].Role)

	assert.Equal(t, "user", prompt.Messages[4].Role)
	assert.Equal(t, suggestionsAsk, prompt.Messages[4].Content[0].Text)
	assert.Nil(t, prompt.Messages[4].Content[0].CacheControl)
}

func TestBuildPromptSkipsEmptySections(t *testing.T) {
	prompt := BuildPrompt(&entity.CopilotRequest{Step: 2})

	// Only the trailing suggestions ask remains.
	require.Len(t, prompt.Messages, 1)
	assert.Equal(t, suggestionsAsk, prompt.Messages[0].Content[0].Text)
}

func TestRenderFormDataSortedAndTyped(t *testing.T) {
	lines := renderFormData(map[string]any{
		"zeta":    true,
		"alpha":   "first",
		"budget":  float64(1500),
		"skipped": nil,
		"tags":    []any{"a", "b"},
	})

	assert.Equal(t, []string{
		"alpha: first",
		"budget: 1500",
		"tags: [\"a\",\"b\"]",
		"zeta: true",
	}, lines)
}

func TestRenderFormDataEmpty(t *testing.T) {
	assert.Nil(t, renderFormData(nil))
	assert.Nil(t, renderFormData(map[string]any{}))
}

func TestCoerceText(t *testing.T) {
	assert.Equal(t, "", coerceText(nil))
	assert.Equal(t, "plain", coerceText("plain"))
	assert.Equal(t, `{"text":"hi"}`, coerceText(map[string]any{"text": "hi"}))
}
