package port

import "context"

// Chat roles understood by every provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single chat turn sent to a text generation provider.
type Message struct {
	Role    string
	Content string
}

// GenerateInput carries the prompt and sampling parameters for one call.
type GenerateInput struct {
	Messages    []Message
	Model       string
	MaxTokens   int
	Temperature float64
}

// GenerateOutput contains the raw text produced by a provider.
type GenerateOutput struct {
	Text         string
	ModelUsed    string
	FinishReason string
}

// TextGenerator abstracts a remote LLM that produces text from chat messages.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
