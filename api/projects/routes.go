package projects

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// Limits carries the per-endpoint rate limiting middleware for the
// heavier nested operations.
type Limits struct {
	Search   gin.HandlerFunc
	Upload   gin.HandlerFunc
	Generate gin.HandlerFunc
}

// RegisterRoutes registers project routes and the nested document,
// search, and generation endpoints.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies, limits Limits) {
	router.POST("", CreateProject(deps))
	router.GET("", ListProjects(deps))
	router.GET("/:id", GetProject(deps))
	router.DELETE("/:id", DeleteProject(deps))

	router.POST("/:id/documents", limits.Upload, UploadDocument(deps))
	router.GET("/:id/documents", ListDocuments(deps))

	router.POST("/:id/search", limits.Search, SearchProject(deps))

	router.POST("/:id/generations", limits.Generate, CreateGeneration(deps))
	router.GET("/:id/generations", ListGenerations(deps))
}
