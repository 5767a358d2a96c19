package copilot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSuggestionsWellFormed(t *testing.T) {
	raw := "Here are some tips for your challenge.\n{\"suggestions\": [\"Define one goal\", \"Set a deadline\"]}"

	narrative, suggestions := ExtractSuggestions(context.Background(), raw)

	assert.Equal(t, "Here are some tips for your challenge.", narrative)
	assert.Equal(t, []string{"Define one goal", "Set a deadline"}, suggestions)
}

func TestExtractSuggestionsMultiline(t *testing.T) {
	raw := "Narrative text.\n{\n  \"suggestions\": [\n    \"Tip one\",\n    \"Tip two\"\n  ]\n}"

	narrative, suggestions := ExtractSuggestions(context.Background(), raw)

	assert.Equal(t, "Narrative text.", narrative)
	assert.Equal(t, []string{"Tip one", "Tip two"}, suggestions)
}

func TestExtractSuggestionsNoStructure(t *testing.T) {
	narrative, suggestions := ExtractSuggestions(context.Background(), "  Just advice, no JSON at all.  ")

	assert.Equal(t, "Just advice, no JSON at all.", narrative)
	assert.NotNil(t, suggestions)
	assert.Empty(t, suggestions)
}

func TestExtractSuggestionsMalformedPayload(t *testing.T) {
	raw := "Some advice.\n{\"suggestions\": [broken}"

	narrative, suggestions := ExtractSuggestions(context.Background(), raw)

	// Malformed tail never matches, so the whole reply is narrative.
	assert.Equal(t, "Some advice.\n{\"suggestions\": [broken}", narrative)
	assert.Empty(t, suggestions)
}

func TestExtractSuggestionsCapped(t *testing.T) {
	raw := `{"suggestions": ["1", "2", "3", "4", "5", "6", "7"]}`

	narrative, suggestions := ExtractSuggestions(context.Background(), raw)

	assert.Equal(t, "", narrative)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, suggestions)
}

func TestExtractSuggestionsEmptyList(t *testing.T) {
	narrative, suggestions := ExtractSuggestions(context.Background(), `Before. {"suggestions": [""]}`)

	assert.Equal(t, "Before.", narrative)
	assert.Equal(t, []string{""}, suggestions)
}
