// Package synthesis assembles a podcast audio artifact from dialogue turns.
package synthesis

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/voxcast/voxcast-api/internal/services/tts"
	"github.com/voxcast/voxcast-api/pkg/ffmpeg"
	"github.com/voxcast/voxcast-api/pkg/wav"
)

// Turn is one spoken line of the generated dialogue
type Turn struct {
	Speaker string
	Text    string
}

const (
	// interTurnPause separates consecutive speakers
	interTurnPause = 500 * time.Millisecond

	// Placeholder artifact written when no TTS is available
	placeholderDuration  = 30 * time.Second
	placeholderFrequency = 440.0
	placeholderRate      = 44100
)

// Result describes the produced artifact
type Result struct {
	AudioPath       string
	TranscriptPath  string
	DurationSeconds float64
	Placeholder     bool
}

// Service synthesizes per-turn speech clips and joins them into one file.
// With no TTS client, or when synthesis fails as a whole, it falls back to
// a fixed placeholder tone so a generation always yields a playable
// artifact.
type Service struct {
	tts      tts.Client
	ffmpeg   *ffmpeg.FFmpeg
	audioDir string
}

// NewService creates a new synthesis service
func NewService(ttsClient tts.Client, ff *ffmpeg.FFmpeg, audioDir string) *Service {
	return &Service{tts: ttsClient, ffmpeg: ff, audioDir: audioDir}
}

// Synthesize produces the audio and transcript artifacts for a generation.
// baseName keys the output filenames (typically the generation uuid).
func (s *Service) Synthesize(ctx context.Context, baseName string, turns []Turn, voiceMap map[string]string) (*Result, error) {
	if err := os.MkdirAll(s.audioDir, 0755); err != nil {
		return nil, fmt.Errorf("creating audio directory: %w", err)
	}

	transcriptPath, err := s.writeTranscript(baseName, turns)
	if err != nil {
		return nil, err
	}

	if s.tts == nil {
		return s.placeholder(baseName, transcriptPath)
	}

	result, err := s.synthesizeTurns(ctx, baseName, turns, voiceMap)
	if err != nil {
		// The job still completes: fall back to the placeholder artifact
		log.Printf("[ERROR] Audio synthesis failed, writing placeholder: %v", err)
		return s.placeholder(baseName, transcriptPath)
	}
	result.TranscriptPath = transcriptPath
	return result, nil
}

func (s *Service) synthesizeTurns(ctx context.Context, baseName string, turns []Turn, voiceMap map[string]string) (*Result, error) {
	if s.ffmpeg == nil {
		return nil, fmt.Errorf("audio assembly unavailable: no ffmpeg configured")
	}

	workDir, err := os.MkdirTemp(s.audioDir, "segments_*")
	if err != nil {
		return nil, fmt.Errorf("creating segment directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	pausePath := filepath.Join(workDir, "pause.mp3")
	if err := s.ffmpeg.GenerateSilence(ctx, interTurnPause, pausePath); err != nil {
		return nil, err
	}

	segments := make([]string, 0, len(turns)*2)
	for i, turn := range turns {
		voice := voiceMap[turn.Speaker]
		clip, err := s.tts.Synthesize(ctx, turn.Text, voice)
		if err != nil {
			return nil, fmt.Errorf("synthesizing turn %d: %w", i, err)
		}

		clipPath := filepath.Join(workDir, fmt.Sprintf("turn_%04d.mp3", i))
		if err := os.WriteFile(clipPath, clip, 0644); err != nil {
			return nil, fmt.Errorf("writing turn %d: %w", i, err)
		}
		segments = append(segments, clipPath, pausePath)
	}

	audioPath := filepath.Join(s.audioDir, fmt.Sprintf("podcast_%s.mp3", baseName))
	if err := s.ffmpeg.Concat(ctx, segments, audioPath); err != nil {
		return nil, err
	}

	duration, err := s.ffmpeg.MeasureDuration(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	return &Result{AudioPath: audioPath, DurationSeconds: duration}, nil
}

// placeholder writes the fixed 30s 440Hz tone
func (s *Service) placeholder(baseName, transcriptPath string) (*Result, error) {
	audioPath := filepath.Join(s.audioDir, fmt.Sprintf("demo_audio_%s.wav", baseName))
	samples := wav.Tone(placeholderFrequency, placeholderDuration, placeholderRate)
	if err := wav.WriteFile(audioPath, samples, placeholderRate); err != nil {
		return nil, fmt.Errorf("writing placeholder audio: %w", err)
	}

	duration, err := wav.Duration(audioPath)
	if err != nil {
		return nil, fmt.Errorf("measuring placeholder audio: %w", err)
	}

	return &Result{
		AudioPath:       audioPath,
		TranscriptPath:  transcriptPath,
		DurationSeconds: duration,
		Placeholder:     true,
	}, nil
}

// writeTranscript stores the speaker-tagged dialogue next to the audio
func (s *Service) writeTranscript(baseName string, turns []Turn) (string, error) {
	var out strings.Builder
	for _, turn := range turns {
		out.WriteString(turn.Speaker)
		out.WriteString(": ")
		out.WriteString(turn.Text)
		out.WriteString("\n\n")
	}

	path := filepath.Join(s.audioDir, fmt.Sprintf("transcript_%s.txt", baseName))
	if err := os.WriteFile(path, []byte(out.String()), 0644); err != nil {
		return "", fmt.Errorf("writing transcript: %w", err)
	}
	return path, nil
}

// EstimateOffsets returns each turn's cumulative playback offset in seconds,
// assuming conversational speech of about 150 words per minute plus the
// inter-turn pause. Used for citation timestamps, which do not need
// clip-accurate alignment.
func EstimateOffsets(turns []Turn) []float64 {
	const wordsPerSecond = 2.5

	offsets := make([]float64, len(turns))
	var elapsed float64
	for i, turn := range turns {
		offsets[i] = elapsed
		elapsed += float64(len(strings.Fields(turn.Text)))/wordsPerSecond + interTurnPause.Seconds()
	}
	return offsets
}
