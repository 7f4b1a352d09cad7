// Package personas manages the voice/character roster offered for podcast
// generation.
package personas

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/models"
)

// Repository defines data access for personas
type Repository interface {
	List(ctx context.Context, userID string) ([]models.Persona, error)
	GetByUUID(ctx context.Context, uuid string) (*models.Persona, error)
	Create(ctx context.Context, persona *models.Persona) error
	Delete(ctx context.Context, id uint) error
}
