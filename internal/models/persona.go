package models

import (
	"gorm.io/gorm"
)

// Persona is a voice/character available for podcast generation. The built-in
// roster ships with the service; users can add custom ones. Generation runs
// snapshot the roster into their settings, so personas are read-only inputs.
type Persona struct {
	gorm.Model
	UUID          string  `json:"uuid" gorm:"uniqueIndex;not null"`
	Name          string  `json:"name" gorm:"not null"`
	Role          string  `json:"role" gorm:"not null"`
	VoiceID       string  `json:"voice_id"`
	Personality   string  `json:"personality" gorm:"type:text"`
	SpeakingStyle string  `json:"speaking_style" gorm:"type:text"`
	Avatar        string  `json:"avatar"`
	IsCustom      bool    `json:"is_custom" gorm:"default:false;index"`
	UserID        *string `json:"user_id,omitempty" gorm:"index"`
}

// Snapshot converts a persona into the frozen roster-entry form stored on a
// generation's settings.
func (p *Persona) Snapshot() PersonaSnapshot {
	return PersonaSnapshot{
		Name:          p.Name,
		Role:          p.Role,
		VoiceID:       p.VoiceID,
		Personality:   p.Personality,
		SpeakingStyle: p.SpeakingStyle,
		Avatar:        p.Avatar,
	}
}

// TableName specifies the table name for GORM
func (Persona) TableName() string {
	return "personas"
}

// DefaultPersonas returns the built-in roster seeded on first migration.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			Name:          "Dr. Sarah Chen",
			Role:          "Subject Matter Expert",
			VoiceID:       "voice_1",
			Personality:   "Thoughtful, precise, occasionally excited by complex ideas",
			SpeakingStyle: "Academic but accessible, defines jargon clearly",
			Avatar:        "👩‍🏫",
		},
		{
			Name:          "Marcus Rivera",
			Role:          "Investigative Journalist",
			VoiceID:       "voice_2",
			Personality:   "Curious, skeptical, asks probing questions",
			SpeakingStyle: "Clear, direct, challenges assumptions",
			Avatar:        "📰",
		},
		{
			Name:          "Alex Kim",
			Role:          "Curious Student",
			VoiceID:       "voice_3",
			Personality:   "Enthusiastic, asks clarifying questions, relates to everyday life",
			SpeakingStyle: "Conversational, uses analogies, seeks practical applications",
			Avatar:        "🎓",
		},
		{
			Name:          "Dr. James Wright",
			Role:          "Critical Analyst",
			VoiceID:       "voice_4",
			Personality:   "Analytical, methodical, focuses on evidence and logic",
			SpeakingStyle: "Structured, references data, identifies patterns",
			Avatar:        "📊",
		},
		{
			Name:          "Maya Patel",
			Role:          "Creative Storyteller",
			VoiceID:       "voice_5",
			Personality:   "Imaginative, finds narrative threads, makes content engaging",
			SpeakingStyle: "Vivid descriptions, uses metaphors, creates compelling narratives",
			Avatar:        "📚",
		},
	}
}
