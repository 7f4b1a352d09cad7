package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/documents"
	"github.com/voxcast/voxcast-api/api/generations"
	"github.com/voxcast/voxcast-api/api/health"
	"github.com/voxcast/voxcast-api/api/personas"
	"github.com/voxcast/voxcast-api/api/projects"
	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/api/version"
	"github.com/voxcast/voxcast-api/pkg/config"
)

// Default per-client rates, overridable via rate_limiting.endpoints
const (
	defaultRPS  = 10
	searchRPS   = 5
	uploadRPS   = 2
	generateRPS = 1
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine)

	engine.NoRoute(NotFoundHandler())

	limit := func(name string, fallback int) gin.HandlerFunc {
		if !cfg.RateLimiting.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		rps := fallback
		if configured, ok := cfg.RateLimiting.Endpoints[name]; ok && configured > 0 {
			rps = configured
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, rps*2)
	}

	v1 := engine.Group("/api/v1")

	// Project routes carry the nested document, search, and generation
	// creation endpoints. Upload and generation kickoff get their own
	// tighter limits inside the package.
	projectGroup := v1.Group("/projects")
	projectGroup.Use(limit("projects", defaultRPS))
	projects.RegisterRoutes(projectGroup, deps, projects.Limits{
		Search:   limit("search", searchRPS),
		Upload:   limit("upload", uploadRPS),
		Generate: limit("generate", generateRPS),
	})

	documentGroup := v1.Group("/documents")
	documentGroup.Use(limit("documents", defaultRPS))
	documents.RegisterRoutes(documentGroup, deps)

	generationGroup := v1.Group("/generations")
	generationGroup.Use(limit("generations", defaultRPS))
	generations.RegisterRoutes(generationGroup, deps)

	personaGroup := v1.Group("/personas")
	personaGroup.Use(limit("personas", defaultRPS))
	personas.RegisterRoutes(personaGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
