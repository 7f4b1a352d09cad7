package documents

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// RegisterRoutes registers document-level routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/:id", GetDocument(deps))
	router.DELETE("/:id", DeleteDocument(deps))
}
