package documents

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/models"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// GormRepository implements Repository using GORM
type GormRepository struct {
	db *database.DB
}

// NewRepository creates a new GORM-backed document repository
func NewRepository(db *database.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts a new document record
func (r *GormRepository) Create(ctx context.Context, doc *models.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return apperrors.DatabaseError("document insert", err)
	}
	return nil
}

// GetByUUID fetches a document by its public uuid
func (r *GormRepository) GetByUUID(ctx context.Context, uuid string) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("document", uuid)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("document query", err)
	}
	return &doc, nil
}

// GetByID fetches a document by its primary key
func (r *GormRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	err := r.db.WithContext(ctx).First(&doc, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("document", id)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("document query", err)
	}
	return &doc, nil
}

// ListByProject returns all documents of a project, newest first
func (r *GormRepository) ListByProject(ctx context.Context, projectID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, apperrors.DatabaseError("document query", err)
	}
	return docs, nil
}

// ListReadyByProject returns the project's ready documents in upload order
func (r *GormRepository) ListReadyByProject(ctx context.Context, projectID uint) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, models.DocumentStatusReady).
		Order("created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, apperrors.DatabaseError("document query", err)
	}
	return docs, nil
}

// UpdateFields applies a partial update to named columns
func (r *GormRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Document{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return apperrors.DatabaseError("document update", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("document", id)
	}
	return nil
}

// Delete removes a document and its chunks
func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", id).Delete(&models.DocumentChunk{}).Error; err != nil {
			return apperrors.DatabaseError("chunk delete", err)
		}
		result := tx.Delete(&models.Document{}, id)
		if result.Error != nil {
			return apperrors.DatabaseError("document delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("document", id)
		}
		return nil
	})
}

// ReplaceChunks atomically swaps the document's chunk set
func (r *GormRepository) ReplaceChunks(ctx context.Context, documentID uint, chunks []models.DocumentChunk) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Hard-delete so a re-index does not trip the (document, index)
		// unique constraint on soft-deleted rows
		if err := tx.Unscoped().Where("document_id = ?", documentID).Delete(&models.DocumentChunk{}).Error; err != nil {
			return apperrors.DatabaseError("chunk delete", err)
		}
		if len(chunks) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(chunks, 100).Error; err != nil {
			return apperrors.DatabaseError("chunk insert", err)
		}
		return nil
	})
}

// CountChunks returns the number of chunks stored for a document
func (r *GormRepository) CountChunks(ctx context.Context, documentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.DocumentChunk{}).
		Where("document_id = ?", documentID).Count(&count).Error
	if err != nil {
		return 0, apperrors.DatabaseError("chunk count", err)
	}
	return count, nil
}
