package personas

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/models"
	apperrors "github.com/voxcast/voxcast-api/pkg/errors"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(&models.Persona{}))
	require.NoError(t, db.SeedDefaultPersonas())
	return NewService(NewRepository(db))
}

func TestListDefaults(t *testing.T) {
	svc := setupService(t)

	roster, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, roster, 5)
}

func TestCustomPersonaLifecycle(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	persona := models.Persona{Name: "Riley Okafor", Role: "Field Reporter", VoiceID: "voice_9"}
	require.NoError(t, svc.CreateCustom(ctx, &persona, "user-1"))
	require.NotEmpty(t, persona.UUID)

	// Owner sees defaults plus their persona; other users see defaults only
	mine, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 6)

	theirs, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 5)

	_, err = svc.Get(ctx, persona.UUID, "user-2")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeAccessDenied))

	err = svc.DeleteCustom(ctx, persona.UUID, "user-2")
	require.Error(t, err)

	require.NoError(t, svc.DeleteCustom(ctx, persona.UUID, "user-1"))
	after, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, after, 5)
}

func TestCreateCustomValidation(t *testing.T) {
	svc := setupService(t)
	err := svc.CreateCustom(context.Background(), &models.Persona{Role: "Host"}, "user-1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestDeleteBuiltinRefused(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	roster, err := svc.List(ctx, "")
	require.NoError(t, err)

	err = svc.DeleteCustom(ctx, roster[0].UUID, "user-1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeAccessDenied))
}
