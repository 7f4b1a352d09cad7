// Package projects owns project records, the grouping unit for documents
// and generations.
package projects

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/models"
)

// Repository defines data access for projects
type Repository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByUUID(ctx context.Context, uuid string) (*models.Project, error)
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	List(ctx context.Context) ([]models.Project, error)
	Delete(ctx context.Context, id uint) error
}
