package copilot

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/crowdlaunch/challenge-backend/internal/entity"
)

// maxOutputTokens caps the model reply regardless of step or input size.
const maxOutputTokens = 600

// stepInstructions selects the system instruction per wizard step.
var stepInstructions = map[int]string{
	1: "You are assisting with defining a challenge. Focus on creating clear, specific, and measurable goals, and ensure the challenge is well-scoped. Use the form data to tailor your suggestions.",
	2: "You are helping define the target audience for a challenge. Suggest strategies to reach the right participants, considering diversity, skills, and geographic factors.",
	3: "You are assisting with setting submission requirements. Provide clear and practical suggestions for formats, documentation, and instructions to ensure participants can submit effectively.",
	4: "You are helping design prizes and incentives. Suggest a balanced prize structure, considering budget, non-monetary rewards, and sponsorship opportunities.",
	5: "You are assisting with setting a timeline and milestones. Suggest a realistic schedule with clear deadlines and buffers to ensure the challenge runs smoothly.",
	6: "You are helping define evaluation criteria. Suggest fair and transparent criteria, judging processes, and methods to handle ties.",
	7: "You are assisting with success metrics and challenge management. Suggest key metrics, notification strategies, and dispute resolution methods to ensure the challenge is successful.",
}

const fallbackInstruction = "You are assisting with a challenge creation process."

const suggestionsAsk = "Based on the above context and conversation, please provide 5 tailored suggestion tips as a JSON array of strings under the key 'suggestions' at the end of your response, e.g., {\"suggestions\": [\"Tip 1\", \"Tip 2\", \"Tip 3\", \"Tip 4\", \"Tip 5\"]}). Each suggestion must be concise, under 80 characters. Ensure the suggestions are relevant to the current step and conversation."

// BuildPrompt assembles the model request for one copilot turn. Stable
// content (step instruction, form snapshot, context) is emitted first and
// marked cacheable so the model backend can reuse its processed prefix
// across turns of the same wizard session; the live conversation and the
// trailing suggestions ask follow uncached. Callers must not reorder the
// blocks.
func BuildPrompt(req *entity.CopilotRequest) *entity.ModelRequest {
	instruction, ok := stepInstructions[req.Step]
	if !ok {
		instruction = fallbackInstruction
	}

	prompt := &entity.ModelRequest{
		AnthropicVersion: entity.AnthropicVersion,
		MaxTokens:        maxOutputTokens,
		System: []entity.ContentBlock{
			cacheableBlock(instruction),
		},
	}

	if lines := renderFormData(req.FormData); len(lines) > 0 {
		prompt.Messages = append(prompt.Messages, entity.ModelMessage{
			Role:    "user",
			Content: []entity.ContentBlock{cacheableBlock("Form Data:\n" + strings.Join(lines, "\n"))},
		})
	}

	if len(req.Context) > 0 {
		prompt.Messages = append(prompt.Messages, entity.ModelMessage{
			Role:    "user",
			Content: []entity.ContentBlock{cacheableBlock("Context: " + strings.Join(req.Context, " "))},
		})
	}

	for _, turn := range req.Messages {
		prompt.Messages = append(prompt.Messages, entity.ModelMessage{
			Role:    turn.Role,
			Content: []entity.ContentBlock{textBlock(coerceText(turn.Content))},
		})
	}

	prompt.Messages = append(prompt.Messages, entity.ModelMessage{
		Role:    "user",
		Content: []entity.ContentBlock{textBlock(suggestionsAsk)},
	})

	return prompt
}

// renderFormData flattens the wizard form snapshot into "key: value" lines.
// Keys are sorted to keep the rendered block byte-stable between turns;
// an unstable block would defeat the cache hint. Nil values are dropped.
func renderFormData(formData map[string]any) []string {
	if len(formData) == 0 {
		return nil
	}

	keys := make([]string, 0, len(formData))
	for key := range formData {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		value := formData[key]
		if value == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", key, formatValue(value)))
	}

	return lines
}

func formatValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []any, map[string]any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// coerceText flattens arbitrary message content to plain text.
func coerceText(content any) string {
	switch v := content.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(data)
	}
}

func cacheableBlock(text string) entity.ContentBlock {
	return entity.ContentBlock{
		Type:         "text",
		Text:         text,
		CacheControl: &entity.CacheControl{Type: entity.CacheEphemeral},
	}
}

func textBlock(text string) entity.ContentBlock {
	return entity.ContentBlock{Type: "text", Text: text}
}
