// Package generation orchestrates podcast episode creation: concept
// extraction, outline and dialogue drafting, audio synthesis, and
// citation linking.
package generation

import (
	"context"

	"github.com/voxcast/voxcast-api/internal/models"
)

// Repository defines data access for generation runs and their citations
type Repository interface {
	Create(ctx context.Context, gen *models.AudioGeneration) error
	GetByUUID(ctx context.Context, uuid string) (*models.AudioGeneration, error)
	ListByProject(ctx context.Context, projectID uint) ([]models.AudioGeneration, error)
	UpdateFields(ctx context.Context, id uint, fields map[string]interface{}) error

	ReplaceCitations(ctx context.Context, generationID uint, citations []models.Citation) error
	ListCitations(ctx context.Context, generationID uint) ([]models.Citation, error)
}

// Generator runs the full pipeline for one generation record
type Generator interface {
	GeneratePodcast(ctx context.Context, generationUUID string) error
}
