package entity

// ConversationTurn is one turn of the wizard conversation. Content is kept as
// an arbitrary value because the frontend occasionally sends structured
// message bodies; the prompt builder coerces it to text.
type ConversationTurn struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// CopilotRequest is the inbound copilot payload. Everything here is
// transient; nothing is persisted.
type CopilotRequest struct {
	Messages []ConversationTurn `json:"messages"`
	Context  []string           `json:"context"`
	FormData map[string]any     `json:"formData"`
	Step     int                `json:"step"`
}

// AssistantMessage is the copilot response envelope returned to the client.
// Timestamp and CreatedAt are always equal; both exist because different
// frontend components read different names.
type AssistantMessage struct {
	Role        string   `json:"role"`
	Content     string   `json:"content"`
	Timestamp   string   `json:"timestamp"`
	CreatedAt   string   `json:"createdAt"`
	Suggestions []string `json:"suggestions"`
}

// Model invocation wire types, Anthropic messages API shape as exposed by the
// Bedrock-compatible endpoint.

const (
	AnthropicVersion = "bedrock-2023-05-31"
	CacheEphemeral   = "ephemeral"
)

type CacheControl struct {
	Type string `json:"type"`
}

// ContentBlock is one text segment of a prompt. Blocks carrying
// cache_control may be reused by the backend across calls sharing the same
// prefix, which is why stable content is always emitted before live content.
type ContentBlock struct {
	Type         string        `json:"type"`
	Text         string        `json:"text"`
	CacheControl *CacheControl `json:"cache_control,omitempty"`
}

// Cacheable reports whether the block carries a cache hint.
func (b ContentBlock) Cacheable() bool {
	return b.CacheControl != nil
}

type ModelMessage struct {
	Role    string         `json:"role"`
	Content []ContentBlock `json:"content"`
}

// ModelRequest is the full prompt specification sent to the model service.
type ModelRequest struct {
	AnthropicVersion string         `json:"anthropic_version"`
	MaxTokens        int            `json:"max_tokens"`
	System           []ContentBlock `json:"system"`
	Messages         []ModelMessage `json:"messages"`
}

// ModelResponse is the subset of the model reply this service reads.
type ModelResponse struct {
	Content []ContentBlock `json:"content"`
}
