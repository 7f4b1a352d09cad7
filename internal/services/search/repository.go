package search

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/models"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// GormChunkReader loads chunks through GORM
type GormChunkReader struct {
	db *database.DB
}

// NewGormChunkReader creates a new GORM-backed chunk reader
func NewGormChunkReader(db *database.DB) *GormChunkReader {
	return &GormChunkReader{db: db}
}

// ChunksByProject returns every chunk of the project's ready documents
func (r *GormChunkReader) ChunksByProject(ctx context.Context, projectID uint) ([]models.DocumentChunk, error) {
	var chunks []models.DocumentChunk
	err := r.db.WithContext(ctx).
		Joins("JOIN documents ON documents.id = document_chunks.document_id").
		Where("documents.project_id = ? AND documents.status = ? AND documents.deleted_at IS NULL",
			projectID, models.DocumentStatusReady).
		Order("document_chunks.document_id, document_chunks.chunk_index").
		Find(&chunks).Error
	if err != nil {
		return nil, apperrors.DatabaseError("chunk query", err)
	}
	return chunks, nil
}
