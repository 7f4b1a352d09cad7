package projects

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

// NewRepository creates a new GORM-backed project repository
func NewRepository(db *database.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Create inserts a new project record
func (r *GormRepository) Create(ctx context.Context, project *models.Project) error {
	if err := r.db.WithContext(ctx).Create(project).Error; err != nil {
		return apperrors.DatabaseError("project insert", err)
	}
	return nil
}

// GetByUUID fetches a project by its public uuid
func (r *GormRepository) GetByUUID(ctx context.Context, uuid string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&project).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("project", uuid)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("project query", err)
	}
	return &project, nil
}

// GetByID fetches a project by its primary key
func (r *GormRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("project", id)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("project query", err)
	}
	return &project, nil
}

// List returns all projects, newest first
func (r *GormRepository) List(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, apperrors.DatabaseError("project query", err)
	}
	return projects, nil
}

// Delete removes a project and everything it owns
func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var docIDs []uint
		if err := tx.Model(&models.Document{}).Where("project_id = ?", id).Pluck("id", &docIDs).Error; err != nil {
			return apperrors.DatabaseError("document query", err)
		}
		if len(docIDs) > 0 {
			if err := tx.Where("document_id IN ?", docIDs).Delete(&models.DocumentChunk{}).Error; err != nil {
				return apperrors.DatabaseError("chunk delete", err)
			}
			if err := tx.Where("project_id = ?", id).Delete(&models.Document{}).Error; err != nil {
				return apperrors.DatabaseError("document delete", err)
			}
		}

		var genIDs []uint
		if err := tx.Model(&models.AudioGeneration{}).Where("project_id = ?", id).Pluck("id", &genIDs).Error; err != nil {
			return apperrors.DatabaseError("generation query", err)
		}
		if len(genIDs) > 0 {
			if err := tx.Where("generation_id IN ?", genIDs).Delete(&models.Citation{}).Error; err != nil {
				return apperrors.DatabaseError("citation delete", err)
			}
			if err := tx.Where("project_id = ?", id).Delete(&models.AudioGeneration{}).Error; err != nil {
				return apperrors.DatabaseError("generation delete", err)
			}
		}

		result := tx.Delete(&models.Project{}, id)
		if result.Error != nil {
			return apperrors.DatabaseError("project delete", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NotFound("project", id)
		}
		return nil
	})
}
