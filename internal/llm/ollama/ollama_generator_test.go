package ollama_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsumm/internal/config"
	"docsumm/internal/llm"
	"docsumm/internal/llm/ollama"
)

func TestNewGenerator_Defaults(t *testing.T) {
	g, err := ollama.NewGenerator(&config.AIConfig{Provider: "ollama"})

	require.NoError(t, err)
	assert.NotNil(t, g)
}

func TestRegisteredWithBaseURL(t *testing.T) {
	g, err := llm.NewGenerator(&config.AIConfig{
		Provider: "ollama",
		BaseURL:  "http://localhost:11434",
		Model:    "llama3",
	})

	require.NoError(t, err)
	assert.NotNil(t, g)
}
