package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// Default ElevenLabs configuration values
const (
	DefaultElevenLabsBaseURL = "https://api.elevenlabs.io"
	DefaultElevenLabsModel   = "eleven_monolingual_v1"
	DefaultElevenLabsVoice   = "21m00Tcm4TlvDq8ikWAM"
	DefaultElevenLabsTimeout = 60 * time.Second
)

// ElevenLabsClient calls the ElevenLabs text-to-speech API
type ElevenLabsClient struct {
	client       *http.Client
	baseURL      string
	apiKey       string
	model        string
	defaultVoice string
}

// ElevenLabsConfig holds configuration for the ElevenLabs client
type ElevenLabsConfig struct {
	APIKey       string
	BaseURL      string
	Model        string
	DefaultVoice string
	Timeout      time.Duration
}

type elevenLabsRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// NewElevenLabsClient creates a new ElevenLabs client
func NewElevenLabsClient(cfg ElevenLabsConfig) *ElevenLabsClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultElevenLabsBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultElevenLabsModel
	}
	if cfg.DefaultVoice == "" {
		cfg.DefaultVoice = DefaultElevenLabsVoice
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultElevenLabsTimeout
	}

	return &ElevenLabsClient{
		client:       &http.Client{Timeout: cfg.Timeout},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		model:        cfg.Model,
		defaultVoice: cfg.DefaultVoice,
	}
}

// DefaultVoice returns the voice used when a persona has none
func (c *ElevenLabsClient) DefaultVoice() string {
	return c.defaultVoice
}

// Synthesize returns MP3 audio for the text spoken in the given voice
func (c *ElevenLabsClient) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = c.defaultVoice
	}

	jsonBody, err := json.Marshal(elevenLabsRequest{Text: text, ModelID: c.model})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/v1/text-to-speech/%s", c.baseURL, voiceID), bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.GenerationTimeout("tts", err)
		}
		return nil, apperrors.GenerationUnavailable("tts", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, apperrors.GenerationUnavailable("tts",
			fmt.Errorf("elevenlabs returned status %d: %s", resp.StatusCode, string(body)))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.GenerationUnavailable("tts", err)
	}
	if len(audio) == 0 {
		return nil, apperrors.GenerationUnavailable("tts", fmt.Errorf("empty audio response"))
	}
	return audio, nil
}
