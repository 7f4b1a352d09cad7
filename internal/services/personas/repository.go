package personas

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

// NewRepository creates a new GORM-backed persona repository
func NewRepository(db *database.DB) *GormRepository {
	return &GormRepository{db: db}
}

// List returns the default roster plus the user's custom personas. An empty
// userID returns defaults only.
func (r *GormRepository) List(ctx context.Context, userID string) ([]models.Persona, error) {
	var personas []models.Persona
	query := r.db.WithContext(ctx).Where("is_custom = ?", false)
	if userID != "" {
		query = query.Or("is_custom = ? AND user_id = ?", true, userID)
	}
	if err := query.Order("is_custom, id").Find(&personas).Error; err != nil {
		return nil, apperrors.DatabaseError("persona query", err)
	}
	return personas, nil
}

// GetByUUID fetches a persona by its public uuid
func (r *GormRepository) GetByUUID(ctx context.Context, uuid string) (*models.Persona, error) {
	var persona models.Persona
	err := r.db.WithContext(ctx).Where("uuid = ?", uuid).First(&persona).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NotFound("persona", uuid)
	}
	if err != nil {
		return nil, apperrors.DatabaseError("persona query", err)
	}
	return &persona, nil
}

// Create inserts a custom persona
func (r *GormRepository) Create(ctx context.Context, persona *models.Persona) error {
	if err := r.db.WithContext(ctx).Create(persona).Error; err != nil {
		return apperrors.DatabaseError("persona insert", err)
	}
	return nil
}

// Delete removes a persona
func (r *GormRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Persona{}, id)
	if result.Error != nil {
		return apperrors.DatabaseError("persona delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("persona", id)
	}
	return nil
}
