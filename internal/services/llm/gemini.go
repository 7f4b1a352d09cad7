package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// DefaultGeminiModel is used when no model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiClient calls the Google Generative AI API
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a new Gemini client
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = DefaultGeminiModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Name returns the provider name for logging
func (c *GeminiClient) Name() string {
	return "gemini"
}

// Generate returns the model's completion for the prompt
func (c *GeminiClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	model := c.client.GenerativeModel(c.model)
	if maxTokens > 0 {
		tokens := int32(maxTokens)
		model.MaxOutputTokens = &tokens
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", apperrors.GenerationTimeout("llm", err)
		}
		return "", apperrors.GenerationUnavailable("llm", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", apperrors.GenerationUnavailable("llm", fmt.Errorf("empty completion"))
	}

	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	if out.Len() == 0 {
		return "", apperrors.GenerationUnavailable("llm", fmt.Errorf("empty completion"))
	}
	return out.String(), nil
}

// Close releases the underlying API client
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
