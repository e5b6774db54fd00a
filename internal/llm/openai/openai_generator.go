package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	goopenai "github.com/sashabaranov/go-openai"

	"docsumm/internal/config"
	"docsumm/internal/llm"
	"docsumm/internal/port"
)

const providerName = "openai"

func init() {
	llm.RegisterProvider(providerName, func(cfg *config.AIConfig) (port.TextGenerator, error) {
		return NewGenerator(cfg), nil
	})
}

// Generator implements port.TextGenerator using the OpenAI Chat Completions API.
type Generator struct {
	client *goopenai.Client
	model  string
}

// NewGenerator creates an OpenAI-backed generator. A non-empty BaseURL points
// the client at a compatible server (Azure proxies, local gateways, tests).
func NewGenerator(cfg *config.AIConfig) *Generator {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout() + 5*time.Second}

	model := cfg.Model
	if model == "" {
		model = config.DefaultModel(providerName)
	}
	return &Generator{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (g *Generator) Generate(ctx context.Context, input port.GenerateInput) (*port.GenerateOutput, error) {
	model := input.Model
	if model == "" {
		model = g.model
	}

	messages := make([]goopenai.ChatCompletionMessage, 0, len(input.Messages))
	for _, m := range input.Messages {
		messages = append(messages, goopenai.ChatCompletionMessage{
			Role:    toOpenAIRole(m.Role),
			Content: m.Content,
		})
	}

	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   input.MaxTokens,
		Temperature: float32(input.Temperature),
	})
	if err != nil {
		return nil, classify(err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from API: no choices")
	}

	return &port.GenerateOutput{
		Text:         resp.Choices[0].Message.Content,
		ModelUsed:    model,
		FinishReason: string(resp.Choices[0].FinishReason),
	}, nil
}

func toOpenAIRole(role string) string {
	if role == port.RoleSystem {
		return goopenai.ChatMessageRoleSystem
	}
	return goopenai.ChatMessageRoleUser
}

// classify wraps SDK errors carrying an HTTP status into typed llm errors.
func classify(err error) error {
	status := 0
	var apiErr *goopenai.APIError
	var reqErr *goopenai.RequestError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatusCode
	case errors.As(err, &reqErr):
		status = reqErr.HTTPStatusCode
	}

	baseErr := fmt.Errorf("calling openai API: %w", err)
	switch status {
	case http.StatusTooManyRequests:
		return llm.NewRateLimitError(providerName, baseErr, 0)
	case http.StatusUnauthorized, http.StatusForbidden:
		return &llm.AuthError{Err: baseErr, Provider: providerName}
	default:
		return baseErr
	}
}
