package copilot

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// maxSuggestions bounds the list returned to the client; the model is asked
// for exactly five but is not trusted to comply.
const maxSuggestions = 5

// suggestionsPattern matches the trailing structured payload the model is
// asked to emit: {"suggestions": ["...", ...]} with double-quoted string
// elements, tolerant of whitespace and line breaks anywhere between tokens.
var suggestionsPattern = regexp.MustCompile(`(?s)\{\s*"suggestions"\s*:\s*\[\s*("[^"]*"(?:\s*,\s*"[^"]*")*\s*)\]\s*\}`)

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExtractSuggestions splits a raw model reply into its narrative text and
// the embedded suggestions list. Extraction never fails: anything that does
// not parse degrades to an empty list with the narrative still returned,
// because a reply without tips is useful while no reply is not.
func ExtractSuggestions(ctx context.Context, raw string) (string, []string) {
	suggestions := []string{}

	loc := suggestionsPattern.FindStringSubmatchIndex(raw)
	if loc == nil {
		return strings.TrimSpace(raw), suggestions
	}

	narrative := strings.TrimSpace(raw[:loc[0]])
	elements := raw[loc[2]:loc[3]]

	elements = strings.ReplaceAll(elements, "\n", "")
	elements = strings.ReplaceAll(elements, "\r", "")
	elements = whitespaceRun.ReplaceAllString(strings.TrimSpace(elements), " ")

	var parsed []string
	if err := json.Unmarshal([]byte("["+elements+"]"), &parsed); err != nil {
		ctxzap.Warn(ctx, "failed to parse suggestions payload, returning none",
			zap.Error(err),
			zap.String("raw_elements", elements),
		)
		return narrative, suggestions
	}

	if len(parsed) > maxSuggestions {
		parsed = parsed[:maxSuggestions]
	}

	return narrative, append(suggestions, parsed...)
}
