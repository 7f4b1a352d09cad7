package projects

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

func setupDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.AutoMigrate(
		&models.Project{}, &models.Document{}, &models.DocumentChunk{},
		&models.AudioGeneration{}, &models.Citation{}))
	return db
}

func TestProjectCRUD(t *testing.T) {
	repo := NewRepository(setupDB(t))
	ctx := context.Background()

	project := models.Project{UUID: "p1", Name: "research", Description: "papers"}
	require.NoError(t, repo.Create(ctx, &project))

	fetched, err := repo.GetByUUID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "research", fetched.Name)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, project.ID))
	_, err = repo.GetByUUID(ctx, "p1")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestProjectDeleteCascades(t *testing.T) {
	db := setupDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	project := models.Project{UUID: "p1", Name: "research"}
	require.NoError(t, repo.Create(ctx, &project))

	doc := models.Document{UUID: "d1", ProjectID: project.ID, Filename: "a.txt", OriginalFilename: "a.txt", Status: models.DocumentStatusReady}
	require.NoError(t, db.Create(&doc).Error)
	require.NoError(t, db.Create(&models.DocumentChunk{DocumentID: doc.ID, ChunkIndex: 0, Content: "text"}).Error)

	gen := models.AudioGeneration{UUID: "g1", ProjectID: project.ID, Status: models.GenerationStatusCompleted}
	require.NoError(t, db.Create(&gen).Error)
	require.NoError(t, db.Create(&models.Citation{GenerationID: gen.ID, DocumentID: doc.ID, DisplayText: "a.txt"}).Error)

	require.NoError(t, repo.Delete(ctx, project.ID))

	var count int64
	require.NoError(t, db.Model(&models.Document{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.DocumentChunk{}).Where("document_id = ?", doc.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.AudioGeneration{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Citation{}).Where("generation_id = ?", gen.ID).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteMissingProject(t *testing.T) {
	repo := NewRepository(setupDB(t))
	err := repo.Delete(context.Background(), 12345)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
