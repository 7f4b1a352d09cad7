package search

import (
	"context"
	"log"

	"github.com/voxcast/voxcast-api/internal/services/embeddings"
)

// DefaultLimit caps results when the caller does not specify one
const DefaultLimit = 10

// Service embeds a query and ranks the project's chunks against it with a
// linear scan. At the document counts this system targets that beats
// maintaining a vector index.
type Service struct {
	chunks   ChunkReader
	embedder embeddings.Embedder
}

// NewService creates a new search service
func NewService(chunks ChunkReader, embedder embeddings.Embedder) *Service {
	return &Service{chunks: chunks, embedder: embedder}
}

// SearchChunks embeds the query and returns the best-matching chunks of the
// project's ready documents.
func (s *Service) SearchChunks(ctx context.Context, projectID uint, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	queryVec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	chunks, err := s.chunks.ChunksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return []Result{}, nil
	}

	candidates := make([]Candidate, 0, len(chunks))
	for _, c := range chunks {
		candidates = append(candidates, Candidate{
			ChunkID:    c.ID,
			DocumentID: c.DocumentID,
			ChunkIndex: c.ChunkIndex,
			Content:    c.Content,
			Embedding:  c.Embedding,
		})
	}

	results := Rank(queryVec, candidates, limit)
	log.Printf("[DEBUG] Search in project %d matched %d of %d chunks", projectID, len(results), len(candidates))
	return results, nil
}
