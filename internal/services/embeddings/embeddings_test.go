package embeddings

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/internal/models"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func TestLocalEmbedderDeterministic(t *testing.T) {
	e := NewLocalEmbedder(models.EmbeddingDimensions)
	ctx := context.Background()

	first, err := e.Embed(ctx, "the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)
	second, err := e.Embed(ctx, "the quick brown fox jumps over the lazy dog")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first, models.EmbeddingDimensions)
}

func TestLocalEmbedderNormalized(t *testing.T) {
	e := NewLocalEmbedder(384)
	vec, err := e.Embed(context.Background(), "alpha beta gamma delta")
	require.NoError(t, err)

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-4)
}

func TestLocalEmbedderDistinguishesTexts(t *testing.T) {
	e := NewLocalEmbedder(384)
	ctx := context.Background()

	a, err := e.Embed(ctx, "photosynthesis in green plants")
	require.NoError(t, err)
	b, err := e.Embed(ctx, "quarterly financial projections")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLocalEmbedderEmptyText(t *testing.T) {
	e := NewLocalEmbedder(384)
	vec, err := e.Embed(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, vec, 384)
	for _, v := range vec {
		assert.Zero(t, v)
	}
}

func TestOllamaEmbedder(t *testing.T) {
	want := make([]float64, 384)
	want[0] = 0.25

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/embeddings", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "nomic-embed-text", req["model"])
		json.NewEncoder(w).Encode(map[string]interface{}{"embedding": want})
	}))
	defer server.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: server.URL, Dimensions: 384})
	vec, err := e.Embed(context.Background(), "some text")
	require.NoError(t, err)
	require.Len(t, vec, 384)
	assert.InDelta(t, 0.25, vec[0], 1e-6)
}

func TestOllamaEmbedderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusInternalServerError)
	}))
	defer server.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: server.URL})
	_, err := e.Embed(context.Background(), "some text")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeGenerationUnavailable))
}

func TestOllamaEmbedderDimensionMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"embedding": []float64{1, 2, 3}})
	}))
	defer server.Close()

	e := NewOllamaEmbedder(OllamaConfig{BaseURL: server.URL, Dimensions: 384})
	_, err := e.Embed(context.Background(), "some text")
	assert.Error(t, err)
}
