// Package tts provides the speech synthesis capability used by podcast
// audio assembly.
package tts

import "context"

// Client synthesizes speech for one dialogue turn. A nil Client means no
// provider is configured and synthesis falls back to the placeholder tone.
type Client interface {
	// Synthesize returns encoded audio for the text spoken in the given
	// voice.
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)

	// DefaultVoice returns the voice used when a persona has none
	DefaultVoice() string
}
