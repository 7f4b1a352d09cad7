package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() GenerationSettings {
	return GenerationSettings{
		Duration:      DurationMedium,
		Tone:          ToneBalanced,
		CitationStyle: CitationStyleTimestamps,
		Personas: []PersonaSnapshot{
			{Name: "Dr. Sarah Chen", Role: "Subject Matter Expert", VoiceID: "voice_1"},
		},
	}
}

func TestGenerationSettingsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GenerationSettings)
		wantErr bool
	}{
		{"valid", func(s *GenerationSettings) {}, false},
		{"bad duration", func(s *GenerationSettings) { s.Duration = "2-3" }, true},
		{"bad tone", func(s *GenerationSettings) { s.Tone = "sarcastic" }, true},
		{"bad citation style", func(s *GenerationSettings) { s.CitationStyle = "footnotes" }, true},
		{"empty roster", func(s *GenerationSettings) { s.Personas = nil }, true},
		{"nameless persona", func(s *GenerationSettings) { s.Personas[0].Name = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerationSettingsEstimatedSeconds(t *testing.T) {
	s := validSettings()
	s.Duration = DurationShort
	assert.Equal(t, 60, s.EstimatedSeconds())
	s.Duration = DurationLong
	assert.Equal(t, 120, s.EstimatedSeconds())
}

func TestGenerationSettingsScanRoundTrip(t *testing.T) {
	original := validSettings()
	original.FocusAreas = []string{"methodology", "results"}

	value, err := original.Value()
	require.NoError(t, err)

	var decoded GenerationSettings
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, original, decoded)
}

func TestEmbeddingVectorValue(t *testing.T) {
	vec := make(EmbeddingVector, EmbeddingDimensions)
	vec[0] = 0.5

	value, err := vec.Value()
	require.NoError(t, err)

	var decoded EmbeddingVector
	require.NoError(t, decoded.Scan(value))
	require.Len(t, decoded, EmbeddingDimensions)
	assert.InDelta(t, 0.5, decoded[0], 1e-6)
}

func TestEmbeddingVectorRejectsWrongWidth(t *testing.T) {
	vec := make(EmbeddingVector, 10)
	_, err := vec.Value()
	assert.Error(t, err)
}

func TestDocumentIsTerminal(t *testing.T) {
	doc := Document{Status: DocumentStatusProcessing}
	assert.False(t, doc.IsTerminal())
	doc.Status = DocumentStatusReady
	assert.True(t, doc.IsTerminal())
	doc.Status = DocumentStatusError
	assert.True(t, doc.IsTerminal())
}

func TestJobPayloadHelpers(t *testing.T) {
	job := Job{
		Type:    JobTypeDocumentIndexing,
		Payload: JobPayload{"document_uuid": "abc-123", "attempt": float64(2)},
	}

	uuid, ok := job.GetPayloadString("document_uuid")
	require.True(t, ok)
	assert.Equal(t, "abc-123", uuid)

	_, ok = job.GetPayloadString("missing")
	assert.False(t, ok)
}

func TestJobRetryBackoff(t *testing.T) {
	recent := time.Now().Add(-time.Second)
	job := Job{
		Status:       JobStatusFailed,
		RetryCount:   2,
		MaxRetries:   3,
		LastFailedAt: &recent,
	}

	require.True(t, job.IsRetryable())
	// 2 retries -> 4x the minimum delay must elapse
	assert.False(t, job.CanRetryNow(time.Minute))
	assert.True(t, job.CanRetryNow(100*time.Millisecond))

	job.RetryCount = 3
	assert.False(t, job.IsRetryable())
	assert.True(t, job.IsTerminal())
}

func TestDefaultPersonasRoster(t *testing.T) {
	roster := DefaultPersonas()
	require.Len(t, roster, 5)
	for _, p := range roster {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Role)
		assert.NotEmpty(t, p.VoiceID)
		assert.False(t, p.IsCustom)
	}

	snap := roster[0].Snapshot()
	assert.Equal(t, roster[0].Name, snap.Name)
	assert.Equal(t, roster[0].VoiceID, snap.VoiceID)
}
