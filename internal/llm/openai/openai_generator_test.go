package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docsumm/internal/config"
	"docsumm/internal/llm"
	"docsumm/internal/llm/openai"
	"docsumm/internal/port"
)

func newTestGenerator(serverURL string) *openai.Generator {
	return openai.NewGenerator(&config.AIConfig{
		Provider:    "openai",
		APIKey:      "test-openai-key",
		Model:       "gpt-3.5-turbo",
		BaseURL:     serverURL + "/v1",
		TimeoutSecs: 5,
	})
}

func testInput() port.GenerateInput {
	return port.GenerateInput{
		Messages: []port.Message{
			{Role: port.RoleSystem, Content: "be brief"},
			{Role: port.RoleUser, Content: "summarize this"},
		},
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.5,
	}
}

func TestOpenAIGenerator_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-openai-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-3.5-turbo", reqBody["model"])
		assert.Equal(t, float64(500), reqBody["max_tokens"])
		assert.InDelta(t, 0.5, reqBody["temperature"], 1e-6)

		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]interface{})["role"])
		assert.Equal(t, "user", messages[1].(map[string]interface{})["role"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-1",
			"object": "chat.completion",
			"model":  "gpt-3.5-turbo",
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"message":       map[string]interface{}{"role": "assistant", "content": "  A short summary.  "},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	out, err := newTestGenerator(server.URL).Generate(context.Background(), testInput())

	require.NoError(t, err)
	assert.Equal(t, "  A short summary.  ", out.Text)
	assert.Equal(t, "gpt-3.5-turbo", out.ModelUsed)
	assert.Equal(t, "stop", out.FinishReason)
}

func TestOpenAIGenerator_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests","code":"rate_limit_exceeded"}}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), testInput())

	require.Error(t, err)
	var rlErr *llm.RateLimitError
	assert.True(t, errors.As(err, &rlErr))
}

func TestOpenAIGenerator_Generate_InvalidKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), testInput())

	require.Error(t, err)
	var authErr *llm.AuthError
	assert.True(t, errors.As(err, &authErr))
}

func TestOpenAIGenerator_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestGenerator(server.URL).Generate(context.Background(), testInput())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
