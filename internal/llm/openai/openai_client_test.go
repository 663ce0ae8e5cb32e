package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"taxwise/internal/config"
	"taxwise/internal/llm"
	"taxwise/internal/llm/openai"
)

func newTestClient(serverURL string) *openai.Client {
	cfg := &config.CompleterConfig{
		Provider:    "openai",
		APIKey:      "test-api-key",
		TimeoutSecs: 30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func TestOpenAIClient_Complete_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		err := json.NewDecoder(r.Body).Decode(&reqBody)
		assert.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", reqBody["model"])
		assert.Equal(t, float64(4000), reqBody["max_completion_tokens"])

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"openai reply"}}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	result, err := client.Complete(context.Background(), "system", "user")

	assert.NoError(t, err)
	assert.Equal(t, "openai reply", result)
}

func TestOpenAIClient_Complete_NoAPIKey(t *testing.T) {
	client := openai.NewClient(&config.CompleterConfig{Provider: "openai"})

	assert.False(t, client.Available())

	_, err := client.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, llm.ErrServiceUnavailable)
}

func TestOpenAIClient_Complete_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"invalid key"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.Complete(context.Background(), "s", "u")

	var upstream *llm.UpstreamError
	assert.True(t, errors.As(err, &upstream))
	assert.Equal(t, "openai", upstream.Provider)
	assert.Equal(t, http.StatusUnauthorized, upstream.StatusCode)
}
