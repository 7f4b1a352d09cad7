package tts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/pkg/config"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func TestSynthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/voice_1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		w.Write([]byte("fake-mp3-bytes"))
	}))
	defer server.Close()

	client := NewElevenLabsClient(ElevenLabsConfig{APIKey: "test-key", BaseURL: server.URL})
	audio, err := client.Synthesize(context.Background(), "Hello there", "voice_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("fake-mp3-bytes"), audio)
}

func TestSynthesizeFallsBackToDefaultVoice(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/text-to-speech/narrator", r.URL.Path)
		w.Write([]byte("audio"))
	}))
	defer server.Close()

	client := NewElevenLabsClient(ElevenLabsConfig{APIKey: "k", BaseURL: server.URL, DefaultVoice: "narrator"})
	_, err := client.Synthesize(context.Background(), "Hello", "")
	require.NoError(t, err)
}

func TestSynthesizeServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewElevenLabsClient(ElevenLabsConfig{APIKey: "k", BaseURL: server.URL})
	_, err := client.Synthesize(context.Background(), "Hello", "voice_1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGenerationUnavailable))
}

func TestNewFromConfigOffline(t *testing.T) {
	cfg := &config.Config{}
	assert.Nil(t, NewFromConfig(cfg))

	cfg.TTS.APIKey = "key"
	assert.NotNil(t, NewFromConfig(cfg))
}
