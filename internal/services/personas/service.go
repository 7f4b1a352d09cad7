package personas

import (
	"context"

	"github.com/google/uuid"

	"github.com/voxcast/voxcast-api/internal/models"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

// Service wraps the repository with the access rules: defaults are shared
// and read-only; custom personas belong to their creator.
type Service struct {
	repo Repository
}

// NewService creates a new persona service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the roster visible to a user
func (s *Service) List(ctx context.Context, userID string) ([]models.Persona, error) {
	return s.repo.List(ctx, userID)
}

// Get returns one persona, refusing another user's custom persona
func (s *Service) Get(ctx context.Context, personaUUID, userID string) (*models.Persona, error) {
	persona, err := s.repo.GetByUUID(ctx, personaUUID)
	if err != nil {
		return nil, err
	}
	if persona.IsCustom && (persona.UserID == nil || *persona.UserID != userID) {
		return nil, apperrors.New(apperrors.ErrCodeAccessDenied, "access denied")
	}
	return persona, nil
}

// CreateCustom adds a user-owned persona to the roster
func (s *Service) CreateCustom(ctx context.Context, persona *models.Persona, userID string) error {
	if persona.Name == "" {
		return apperrors.ValidationError("name", "must not be empty")
	}
	if persona.Role == "" {
		return apperrors.ValidationError("role", "must not be empty")
	}

	persona.UUID = uuid.NewString()
	persona.IsCustom = true
	if userID != "" {
		persona.UserID = &userID
	}
	return s.repo.Create(ctx, persona)
}

// DeleteCustom removes a custom persona owned by the user. Built-in
// personas cannot be deleted.
func (s *Service) DeleteCustom(ctx context.Context, personaUUID, userID string) error {
	persona, err := s.repo.GetByUUID(ctx, personaUUID)
	if err != nil {
		return err
	}
	if !persona.IsCustom || persona.UserID == nil || *persona.UserID != userID {
		return apperrors.New(apperrors.ErrCodeAccessDenied, "cannot delete this persona")
	}
	return s.repo.Delete(ctx, persona.ID)
}
