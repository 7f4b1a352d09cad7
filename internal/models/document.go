package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// DocumentStatus represents the lifecycle state of an uploaded document.
// Status only moves forward: uploading → processing → ready|error.
// A re-index restarts the cycle at processing.
type DocumentStatus string

const (
	DocumentStatusUploading  DocumentStatus = "uploading"
	DocumentStatusProcessing DocumentStatus = "processing"
	DocumentStatusReady      DocumentStatus = "ready"
	DocumentStatusError      DocumentStatus = "error"
)

// Document represents an uploaded source file and its extracted text
type Document struct {
	gorm.Model
	UUID             string          `json:"uuid" gorm:"uniqueIndex;not null"`
	ProjectID        uint            `json:"project_id" gorm:"not null;index"`
	Filename         string          `json:"filename" gorm:"not null"` // stored filename on disk
	OriginalFilename string          `json:"original_filename" gorm:"not null"`
	ContentType      string          `json:"content_type"`
	SizeBytes        int64           `json:"size_bytes"`
	Content          *string         `json:"-" gorm:"type:text"` // extracted text, nil until processed
	Status           DocumentStatus  `json:"status" gorm:"default:'uploading';index"`
	Progress         float64         `json:"progress" gorm:"default:0"` // 0.0 - 1.0
	ErrorMessage     string          `json:"error_message,omitempty"`
	Chunks           []DocumentChunk `json:"-" gorm:"foreignKey:DocumentID;constraint:OnDelete:CASCADE"`
}

// IsTerminal returns true once indexing has finished, successfully or not
func (d *Document) IsTerminal() bool {
	return d.Status == DocumentStatusReady || d.Status == DocumentStatusError
}

// TableName specifies the table name for GORM
func (Document) TableName() string {
	return "documents"
}

// EmbeddingDimensions is the fixed width of every stored chunk embedding.
const EmbeddingDimensions = 384

// EmbeddingVector stores a fixed-width embedding as a JSON array column.
// Vectors are immutable once written; a re-index replaces the whole chunk.
type EmbeddingVector []float32

// Value implements driver.Valuer interface for EmbeddingVector
func (v EmbeddingVector) Value() (driver.Value, error) {
	if v == nil {
		return nil, nil
	}
	if len(v) != EmbeddingDimensions {
		return nil, fmt.Errorf("embedding has %d dimensions, want %d", len(v), EmbeddingDimensions)
	}
	return json.Marshal(v)
}

// Scan implements sql.Scanner interface for EmbeddingVector
func (v *EmbeddingVector) Scan(value interface{}) error {
	if value == nil {
		*v = nil
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

	return json.Unmarshal(bytes, v)
}

// ChunkMetadata holds free-form per-chunk attributes (source page, heading, ...)
type ChunkMetadata map[string]interface{}

// Value implements driver.Valuer interface for ChunkMetadata
func (m ChunkMetadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for ChunkMetadata
func (m *ChunkMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = make(ChunkMetadata)
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

	return json.Unmarshal(bytes, m)
}

// DocumentChunk is one indexed window of a document's text together with its
// embedding. ChunkIndex is 0-based and contiguous within a document.
type DocumentChunk struct {
	gorm.Model
	DocumentID uint            `json:"document_id" gorm:"not null;uniqueIndex:idx_chunks_doc_index,priority:1"`
	ChunkIndex int             `json:"chunk_index" gorm:"not null;uniqueIndex:idx_chunks_doc_index,priority:2"`
	Content    string          `json:"content" gorm:"type:text;not null"`
	Embedding  EmbeddingVector `json:"-" gorm:"type:json"`
	Metadata   ChunkMetadata   `json:"metadata,omitempty" gorm:"type:json"`
}

// TableName specifies the table name for GORM
func (DocumentChunk) TableName() string {
	return "document_chunks"
}
