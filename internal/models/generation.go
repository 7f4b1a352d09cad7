package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GenerationStatus represents the lifecycle state of a podcast generation
type GenerationStatus string

const (
	GenerationStatusQueued     GenerationStatus = "queued"
	GenerationStatusProcessing GenerationStatus = "processing"
	GenerationStatusCompleted  GenerationStatus = "completed"
	GenerationStatusFailed     GenerationStatus = "failed"
)

// Duration buckets users can request for a generated episode
const (
	DurationShort  = "5-10"
	DurationMedium = "10-15"
	DurationLong   = "15-20"
)

// Conversation tones
const (
	ToneEducational  = "educational"
	ToneEntertaining = "entertaining"
	ToneBalanced     = "balanced"
	ToneDebate       = "debate"
)

// Citation styles
const (
	CitationStyleInline     = "inline"
	CitationStyleEndnotes   = "endnotes"
	CitationStyleTimestamps = "timestamps"
)

// PersonaSnapshot is the roster entry frozen into a generation's settings.
// It carries everything the outline/dialogue prompts and the synthesizer
// need, so later edits to the persona table never change a past episode.
type PersonaSnapshot struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	VoiceID       string `json:"voiceId"`
	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speakingStyle"`
	Avatar        string `json:"avatar"`
}

// GenerationSettings is the immutable snapshot of what the user asked for,
// stored as a JSON column on the generation record.
type GenerationSettings struct {
	Duration        string            `json:"duration"`
	Personas        []PersonaSnapshot `json:"personas"`
	Tone            string            `json:"tone"`
	FocusAreas      []string          `json:"focus_areas,omitempty"`
	IncludeIntro    bool              `json:"include_intro"`
	IncludeOutro    bool              `json:"include_outro"`
	BackgroundMusic bool              `json:"background_music"`
	CitationStyle   string            `json:"citation_style"`
}

// Validate checks the enum fields and the roster
func (s *GenerationSettings) Validate() error {
	switch s.Duration {
	case DurationShort, DurationMedium, DurationLong:
	default:
		return fmt.Errorf("invalid duration %q", s.Duration)
	}

	switch s.Tone {
	case ToneEducational, ToneEntertaining, ToneBalanced, ToneDebate:
	default:
		return fmt.Errorf("invalid tone %q", s.Tone)
	}

	switch s.CitationStyle {
	case CitationStyleInline, CitationStyleEndnotes, CitationStyleTimestamps:
	default:
		return fmt.Errorf("invalid citation_style %q", s.CitationStyle)
	}

	if len(s.Personas) == 0 {
		return errors.New("at least one persona is required")
	}
	for i, p := range s.Personas {
		if p.Name == "" {
			return fmt.Errorf("persona %d has no name", i)
		}
	}
	return nil
}

// EstimatedSeconds derives a rough completion estimate from the duration bucket
func (s *GenerationSettings) EstimatedSeconds() int {
	switch s.Duration {
	case DurationShort:
		return 60
	case DurationMedium:
		return 90
	case DurationLong:
		return 120
	default:
		return 90
	}
}

// Value implements driver.Valuer interface for GenerationSettings
func (s GenerationSettings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for GenerationSettings
func (s *GenerationSettings) Scan(value interface{}) error {
	if value == nil {
		*s = GenerationSettings{}
		return nil
	}

	var bytes []byte
	switch data := value.(type) {
	case []byte:
		bytes = data
	case string:
		bytes = []byte(data)
	default:
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// AudioGeneration represents one podcast generation run for a project.
// AudioPath and DurationSeconds are set iff the run completed;
// ErrorMessage is set iff it failed.
type AudioGeneration struct {
	gorm.Model
	UUID             string             `json:"uuid" gorm:"uniqueIndex;not null"`
	ProjectID        uint               `json:"project_id" gorm:"not null;index"`
	Status           GenerationStatus   `json:"status" gorm:"default:'queued';index"`
	Progress         int                `json:"progress" gorm:"default:0"` // 0-100, monotonic
	CurrentStep      string             `json:"current_step"`
	Settings         GenerationSettings `json:"settings" gorm:"type:json"`
	AudioPath        *string            `json:"audio_path,omitempty"`
	TranscriptPath   *string            `json:"transcript_path,omitempty"`
	DurationSeconds  *float64           `json:"duration_seconds,omitempty"`
	EstimatedSeconds *int               `json:"estimated_seconds,omitempty"`
	ErrorMessage     *string            `json:"error_message,omitempty"`
	CompletedAt      *time.Time         `json:"completed_at,omitempty"`
	Citations        []Citation         `json:"-" gorm:"foreignKey:GenerationID;constraint:OnDelete:CASCADE"`
}

// IsTerminal returns true once the run has finished, successfully or not
func (g *AudioGeneration) IsTerminal() bool {
	return g.Status == GenerationStatusCompleted || g.Status == GenerationStatusFailed
}

// TableName specifies the table name for GORM
func (AudioGeneration) TableName() string {
	return "audio_generations"
}

// Citation links a moment in a generated episode back to the source chunk
// that grounded it. Rows are written during synthesis and never updated.
type Citation struct {
	gorm.Model
	GenerationID uint    `json:"generation_id" gorm:"not null;index"`
	DocumentID   uint    `json:"document_id" gorm:"not null;index"`
	Timestamp    float64 `json:"timestamp"` // playback offset in seconds
	DisplayText  string  `json:"display_text"`
	Excerpt      string  `json:"excerpt" gorm:"type:text"`
	PageNumber   *int    `json:"page_number,omitempty"`
}

// TableName specifies the table name for GORM
func (Citation) TableName() string {
	return "citations"
}
