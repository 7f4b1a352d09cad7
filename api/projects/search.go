package projects

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// SearchRequest is the payload for semantic search within a project
type SearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}

// SearchProject handles POST /projects/:id/search
func SearchProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := lookupProject(c, deps)
		if !ok {
			return
		}

		var req SearchRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		ctx := c.Request.Context()
		results, err := deps.SearchService.SearchChunks(ctx, project.ID, req.Query, req.Limit)
		if err != nil {
			types.SendError(c, err)
			return
		}

		// Map matched documents back to their public ids
		docs, err := deps.DocumentService.Repo().ListByProject(ctx, project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		docUUIDs := make(map[uint]string, len(docs))
		for _, d := range docs {
			docUUIDs[d.ID] = d.UUID
		}

		types.SendSuccess(c, types.NewSearchResponse(req.Query, results, docUUIDs))
	}
}
