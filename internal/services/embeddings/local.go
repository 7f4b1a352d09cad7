package embeddings

import (
	"context"
	"hash/fnv"
	"math"
	"strings"

	"github.com/voxcast/voxcast-api/internal/models"
)

// LocalEmbedder is a deterministic offline embedder: each lowercased token is
// hashed into one of the vector's dimensions and the counts are L2
// normalized. The same text always produces the same vector, which keeps
// indexing and search fully exercisable without a model server. Not a
// semantic model; a bag-of-words stand-in for environments without one.
type LocalEmbedder struct {
	dimensions int
}

// NewLocalEmbedder creates a deterministic local embedder
func NewLocalEmbedder(dimensions int) *LocalEmbedder {
	if dimensions <= 0 {
		dimensions = models.EmbeddingDimensions
	}
	return &LocalEmbedder{dimensions: dimensions}
}

// Embed generates a vector embedding for the given text
func (e *LocalEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	vec := make([]float32, e.dimensions)
	for _, token := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(token))
		vec[h.Sum32()%uint32(e.dimensions)]++
	}

	var norm float64
	for _, v := range vec {
		norm += float64(v) * float64(v)
	}
	if norm > 0 {
		scale := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return vec, nil
}

// Dimensions returns the embedding vector size
func (e *LocalEmbedder) Dimensions() int {
	return e.dimensions
}
