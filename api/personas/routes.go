package personas

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// RegisterRoutes registers persona routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListPersonas(deps))
	router.POST("", CreatePersona(deps))
	router.DELETE("/:id", DeletePersona(deps))
}
