package tts

import (
	"log"

	"github.com/voxcast/voxcast-api/pkg/config"
)

// NewFromConfig constructs the configured TTS client. A missing API key
// returns nil: synthesis treats a nil client as offline mode and writes the
// placeholder tone instead.
func NewFromConfig(cfg *config.Config) Client {
	if cfg.TTS.APIKey == "" {
		log.Printf("[DEBUG] No TTS API key configured, synthesis runs in offline mode")
		return nil
	}

	return NewElevenLabsClient(ElevenLabsConfig{
		APIKey:       cfg.TTS.APIKey,
		BaseURL:      cfg.TTS.BaseURL,
		Model:        cfg.TTS.Model,
		DefaultVoice: cfg.TTS.DefaultVoice,
		Timeout:      cfg.TTS.Timeout,
	})
}
