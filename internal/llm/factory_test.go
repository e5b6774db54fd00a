package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsumm/internal/config"
	"docsumm/internal/llm"
	_ "docsumm/internal/llm/claude"
	_ "docsumm/internal/llm/gemini"
	_ "docsumm/internal/llm/ollama"
	_ "docsumm/internal/llm/openai"
	"docsumm/internal/port"
)

func TestFactory_RegisterAndCreate(t *testing.T) {
	llm.RegisterProvider("test-provider", func(cfg *config.AIConfig) (port.TextGenerator, error) {
		return &stubGenerator{model: cfg.Model}, nil
	})

	g, err := llm.NewGenerator(&config.AIConfig{
		Provider: "test-provider",
		APIKey:   "key",
		Model:    "test-model",
	})

	require.NoError(t, err)
	require.NotNil(t, g)
	out, err := g.Generate(context.Background(), port.GenerateInput{})
	require.NoError(t, err)
	assert.Equal(t, "test-model", out.ModelUsed)
}

func TestFactory_UnknownProvider(t *testing.T) {
	g, err := llm.NewGenerator(&config.AIConfig{
		Provider: "nonexistent-provider-xyz",
		APIKey:   "key",
	})

	assert.Nil(t, g)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
	assert.Contains(t, err.Error(), "claude, gemini, ollama, openai")
}

func TestFactory_NotConfigured(t *testing.T) {
	g, err := llm.NewGenerator(&config.AIConfig{Provider: "openai"})

	assert.NoError(t, err)
	assert.Nil(t, g)
}

func TestFactory_BuiltinProviders(t *testing.T) {
	names := llm.Providers()

	for _, name := range []string{"claude", "gemini", "ollama", "openai"} {
		assert.Contains(t, names, name)
	}

	for _, name := range []string{"claude", "gemini", "openai"} {
		g, err := llm.NewGenerator(&config.AIConfig{Provider: name, APIKey: "key"})
		require.NoError(t, err, name)
		assert.NotNil(t, g, name)
	}
}

// stubGenerator is a minimal TextGenerator for testing the factory.
type stubGenerator struct {
	model string
}

func (s *stubGenerator) Generate(_ context.Context, _ port.GenerateInput) (*port.GenerateOutput, error) {
	return &port.GenerateOutput{ModelUsed: s.model}, nil
}
