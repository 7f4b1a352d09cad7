package generation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"

	"github.com/voxcast/voxcast-api/internal/models"
)

// GormRepository implements Repository backed by GORM
type GormRepository struct {
	db *gorm.DB
}

// NewRepository creates a new generation repository
func NewRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Create(ctx context.Context, gen *models.AudioGeneration) error {
	if err := r.db.WithContext(ctx).Create(gen).Error; err != nil {
		return apperrors.DatabaseError("create generation", err)
	}
	return nil
}

func (r *GormRepository) GetByUUID(ctx context.Context, uuid string) (*models.AudioGeneration, error) {
	var gen models.AudioGeneration
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&gen).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("generation", uuid)
		}
		return nil, apperrors.DatabaseError("get generation", err)
	}
	return &gen, nil
}

func (r *GormRepository) ListByProject(ctx context.Context, projectID uint) ([]models.AudioGeneration, error) {
	var gens []models.AudioGeneration
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&gens).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list generations", err)
	}
	return gens, nil
}

func (r *GormRepository) UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&models.AudioGeneration{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return apperrors.DatabaseError("update generation", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("generation", "")
	}
	return nil
}

// ReplaceCitations swaps the generation's citation set in one transaction.
// A restarted run rewrites its citations from scratch.
func (r *GormRepository) ReplaceCitations(ctx context.Context, generationID uint, citations []models.Citation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("generation_id = ?", generationID).
			Delete(&models.Citation{}).Error; err != nil {
			return err
		}
		if len(citations) == 0 {
			return nil
		}
		for i := range citations {
			citations[i].GenerationID = generationID
		}
		return tx.CreateInBatches(citations, 100).Error
	})
	if err != nil {
		return apperrors.DatabaseError("replace citations", err)
	}
	return nil
}

func (r *GormRepository) ListCitations(ctx context.Context, generationID uint) ([]models.Citation, error) {
	var citations []models.Citation
	err := r.db.WithContext(ctx).
		Where("generation_id = ?", generationID).
		Order("timestamp ASC").
		Find(&citations).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list citations", err)
	}
	return citations, nil
}
