package personas

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/database"
	personasvc "github.com/voxcast/voxcast-api/internal/services/personas"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	deps := &types.Dependencies{
		DB:             db,
		PersonaService: personasvc.NewService(personasvc.NewRepository(db)),
	}

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1/personas"), deps)
	return router
}

type listResponse struct {
	Personas []types.PersonaResponse `json:"personas"`
	Count    int                     `json:"count"`
}

func listPersonas(t *testing.T, router *gin.Engine, userID string) listResponse {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/personas", nil)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestListDefaultPersonas(t *testing.T) {
	router := newTestRouter(t)

	resp := listPersonas(t, router, "")
	require.Equal(t, 5, resp.Count)

	names := make([]string, 0, len(resp.Personas))
	for _, p := range resp.Personas {
		assert.False(t, p.IsCustom)
		names = append(names, p.Name)
	}
	assert.Contains(t, names, "Dr. Sarah Chen")
	assert.Contains(t, names, "Maya Patel")
}

func TestCreateAndDeleteCustomPersona(t *testing.T) {
	router := newTestRouter(t)

	body := `{"name": "Captain Facts", "role": "Trivia Expert", "voiceId": "voice_9", "personality": "Rapid-fire and playful"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/personas", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created types.PersonaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.IsCustom)
	assert.NotEmpty(t, created.UUID)

	// Visible to its owner, hidden from others
	assert.Equal(t, 6, listPersonas(t, router, "user-1").Count)
	assert.Equal(t, 5, listPersonas(t, router, "user-2").Count)

	// Another user cannot delete it
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/personas/"+created.UUID, nil)
	req.Header.Set("X-User-ID", "user-2")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/personas/"+created.UUID, nil)
	req.Header.Set("X-User-ID", "user-1")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, listPersonas(t, router, "user-1").Count)
}

func TestCreatePersonaRequiresNameAndRole(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/personas", strings.NewReader(`{"name": "No Role"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
