// Package documents owns the document lifecycle: upload records, the
// indexing orchestrator, and chunk persistence.
package documents

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/models"
)

// Repository defines data access for documents and their chunks
type Repository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByUUID(ctx context.Context, uuid string) (*models.Document, error)
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	ListByProject(ctx context.Context, projectID uint) ([]models.Document, error)
	ListReadyByProject(ctx context.Context, projectID uint) ([]models.Document, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) error

	// ReplaceChunks atomically swaps the document's chunk set: existing
	// chunks are removed and the new batch inserted in one transaction.
	ReplaceChunks(ctx context.Context, documentID uint, chunks []models.DocumentChunk) error
	CountChunks(ctx context.Context, documentID uint) (int64, error)
}

// Indexer runs the indexing pipeline for one document
type Indexer interface {
	ProcessDocument(ctx context.Context, documentUUID string) error
}
