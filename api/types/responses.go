package types

import "time"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// ProjectResponse is the wire representation of a project
type ProjectResponse struct {
	UUID          string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	DocumentCount int       `json:"document_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DocumentResponse is the wire representation of a document. Progress is
// 0-1; clients poll it while status is processing.
type DocumentResponse struct {
	UUID             string    `json:"id"`
	ProjectID        string    `json:"project_id"`
	Filename         string    `json:"filename"`
	ContentType      string    `json:"content_type"`
	SizeBytes        int64     `json:"size_bytes"`
	Status           string    `json:"status"`
	Progress         float64   `json:"progress"`
	ChunkCount       int64     `json:"chunk_count"`
	ErrorMessage     string    `json:"error_message,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// GenerationResponse is the wire representation of a generation run.
// Progress is 0-100 with CurrentStep naming the stage in flight.
type GenerationResponse struct {
	UUID             string      `json:"id"`
	ProjectID        string      `json:"project_id"`
	Status           string      `json:"status"`
	Progress         int         `json:"progress"`
	CurrentStep      string      `json:"current_step,omitempty"`
	Settings         interface{} `json:"settings"`
	AudioURL         string      `json:"audio_url,omitempty"`
	DurationSeconds  *float64    `json:"duration_seconds,omitempty"`
	EstimatedSeconds *int        `json:"estimated_seconds,omitempty"`
	ErrorMessage     string      `json:"error_message,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty"`
}

// CitationResponse links an episode moment to its source document
type CitationResponse struct {
	DocumentID  string  `json:"document_id"`
	Timestamp   float64 `json:"timestamp"`
	DisplayText string  `json:"display_text"`
	Excerpt     string  `json:"excerpt"`
	PageNumber  *int    `json:"page_number,omitempty"`
}

// PersonaResponse is the wire representation of a persona
type PersonaResponse struct {
	UUID          string `json:"id"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	VoiceID       string `json:"voiceId"`
	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speakingStyle"`
	Avatar        string `json:"avatar,omitempty"`
	IsCustom      bool   `json:"is_custom"`
}

// SearchResultResponse is one ranked chunk match
type SearchResultResponse struct {
	DocumentID string  `json:"document_id"`
	ChunkIndex int     `json:"chunk_index"`
	Content    string  `json:"content"`
	Score      float32 `json:"score"`
}

// SearchResponse wraps ranked results for a query
type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []SearchResultResponse `json:"results"`
	Count   int                    `json:"count"`
}
