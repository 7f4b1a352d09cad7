// Package embeddings provides the vector embedding capability used by the
// indexing pipeline and similarity search.
package embeddings

import "context"

// Embedder generates fixed-width vector embeddings for text. Implementations
// must be safe for concurrent use; one instance is constructed at startup and
// injected everywhere.
type Embedder interface {
	// Embed generates a vector embedding for the given text
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimensions returns the embedding vector size
	Dimensions() int
}
