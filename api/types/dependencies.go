package types

import (
	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/services/documents"
	"github.com/voxcast/voxcast-api/internal/services/generation"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
	"github.com/voxcast/voxcast-api/internal/services/personas"
	"github.com/voxcast/voxcast-api/internal/services/projects"
	"github.com/voxcast/voxcast-api/internal/services/search"
	"github.com/voxcast/voxcast-api/internal/services/workers"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	ProjectRepo     projects.Repository
	DocumentService *documents.Service
	GenerationRepo  generation.Repository
	PersonaService  *personas.Service
	JobService      jobs.Service
	SearchService   search.Searcher
	WorkerPool      *workers.WorkerPool
	UploadDir       string
	AudioDir        string
	MaxUploadBytes  int64
}
