// Package llm provides the text-generation capability behind concept
// extraction, outlining and dialogue writing.
package llm

import "context"

// Client generates text from a prompt. Implementations must be safe for
// concurrent use. A nil Client means no provider is configured and callers
// fall back to their documented placeholder output.
type Client interface {
	// Generate returns the model's completion for the prompt, bounded by
	// maxTokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)

	// Name returns the provider name for logging
	Name() string
}
