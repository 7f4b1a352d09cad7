// Package search ranks indexed document chunks against a query embedding.
package search

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/models"
)

// ChunkReader loads the candidate chunks for a project
type ChunkReader interface {
	// ChunksByProject returns every chunk belonging to the project's
	// ready documents, with embeddings loaded.
	ChunksByProject(ctx context.Context, projectID uint) ([]models.DocumentChunk, error)
}

// Searcher is the query-side interface exposed to the API layer
type Searcher interface {
	SearchChunks(ctx context.Context, projectID uint, query string, limit int) ([]Result, error)
}
