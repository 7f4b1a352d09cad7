package generations

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// RegisterRoutes registers generation-level routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetGeneration(deps))
	router.GET("/:id/citations", GetCitations(deps))
	router.GET("/:id/audio", GetAudio(deps))
	router.GET("/:id/transcript", GetTranscript(deps))
}
