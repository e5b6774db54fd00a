package ollama

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"

	"docsumm/internal/config"
	"docsumm/internal/llm"
	"docsumm/internal/port"
)

const (
	providerName   = "ollama"
	defaultBaseURL = "http://localhost:11434"
)

func init() {
	llm.RegisterProvider(providerName, func(cfg *config.AIConfig) (port.TextGenerator, error) {
		return NewGenerator(cfg)
	})
}

// Generator implements port.TextGenerator against a self-hosted Ollama server.
type Generator struct {
	model   llms.Model
	modelID string
}

// NewGenerator creates an Ollama-backed generator.
func NewGenerator(cfg *config.AIConfig) (*Generator, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	modelID := cfg.Model
	if modelID == "" {
		modelID = config.DefaultModel(providerName)
	}

	m, err := lcollama.New(
		lcollama.WithModel(modelID),
		lcollama.WithServerURL(baseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing ollama client: %w", err)
	}
	return &Generator{model: m, modelID: modelID}, nil
}

func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	content := make([]llms.MessageContent, 0, len(input.Messages))
	for _, m := range input.Messages {
		msgType := llms.ChatMessageTypeHuman
		if m.Role == port.RoleSystem {
			msgType = llms.ChatMessageTypeSystem
		}
		content = append(content, llms.TextParts(msgType, m.Content))
	}

	opts := []llms.CallOption{
		llms.WithMaxTokens(input.MaxTokens),
		llms.WithTemperature(input.Temperature),
	}
	if input.Model != "" {
		opts = append(opts, llms.WithModel(input.Model))
	}

	resp, err := g.model.GenerateContent(ctx, content, opts...)
	if err != nil {
		return nil, fmt.Errorf("calling ollama API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	modelUsed := input.Model
	if modelUsed == "" {
		modelUsed = g.modelID
	}
	return &port.GenerateOutput{
		Text:         resp.Choices[0].Content,
		ModelUsed:    modelUsed,
		FinishReason: resp.Choices[0].StopReason,
	}, nil
}
