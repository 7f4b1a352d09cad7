package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/voxcast/voxcast-api/pkg/config"
)

// NewFromConfig constructs the configured LLM client. A missing API key
// returns (nil, nil): the generation pipeline treats a nil client as
// offline/demo mode and produces placeholder output.
func NewFromConfig(ctx context.Context, cfg *config.Config) (Client, error) {
	if cfg.AI.APIKey == "" {
		log.Printf("[DEBUG] No LLM API key configured, generation runs in offline mode")
		return nil, nil
	}

	switch cfg.AI.Provider {
	case "anthropic":
		return NewAnthropicClient(AnthropicConfig{
			APIKey:  cfg.AI.APIKey,
			BaseURL: cfg.AI.BaseURL,
			Model:   cfg.AI.Model,
			Timeout: cfg.AI.Timeout,
		}), nil
	case "gemini":
		return NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Model)
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AI.Provider)
	}
}
