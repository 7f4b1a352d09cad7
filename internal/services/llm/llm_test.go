package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/pkg/config"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func TestAnthropicGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))

		var req map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.EqualValues(t, 500, req["max_tokens"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{
				{"type": "text", "text": "Key concept one\n"},
				{"type": "text", "text": "Key concept two"},
			},
		})
	}))
	defer server.Close()

	client := NewAnthropicClient(AnthropicConfig{APIKey: "test-key", BaseURL: server.URL})
	out, err := client.Generate(context.Background(), "extract concepts", 500)
	require.NoError(t, err)
	assert.Equal(t, "Key concept one\nKey concept two", out)
}

func TestAnthropicGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":{"type":"overloaded_error","message":"try later"}}`))
	}))
	defer server.Close()

	client := NewAnthropicClient(AnthropicConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", 100)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGenerationUnavailable))
}

func TestAnthropicGenerateEmptyCompletion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"content": []map[string]string{}})
	}))
	defer server.Close()

	client := NewAnthropicClient(AnthropicConfig{APIKey: "test-key", BaseURL: server.URL})
	_, err := client.Generate(context.Background(), "prompt", 100)
	assert.Error(t, err)
}

func TestNewFromConfigOfflineMode(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "anthropic"

	client, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewFromConfigAnthropic(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "anthropic"
	cfg.AI.APIKey = "key"

	client, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "anthropic", client.Name())
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = "mystery"
	cfg.AI.APIKey = "key"

	_, err := NewFromConfig(context.Background(), cfg)
	assert.Error(t, err)
}
