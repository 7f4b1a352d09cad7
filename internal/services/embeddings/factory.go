package embeddings

import (
	"log"

	"github.com/voxcast/voxcast-api/pkg/config"
)

// NewFromConfig constructs the process-wide embedder. Unknown or unset
// providers fall back to the deterministic local embedder so indexing keeps
// working offline.
func NewFromConfig(cfg *config.Config) Embedder {
	switch cfg.Embedding.Provider {
	case "ollama":
		return NewOllamaEmbedder(OllamaConfig{
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Timeout:    cfg.Embedding.Timeout,
			Dimensions: cfg.Embedding.Dimensions,
		})
	case "", "local":
		return NewLocalEmbedder(cfg.Embedding.Dimensions)
	default:
		log.Printf("[ERROR] Unknown embedding provider %q, using local embedder", cfg.Embedding.Provider)
		return NewLocalEmbedder(cfg.Embedding.Dimensions)
	}
}
