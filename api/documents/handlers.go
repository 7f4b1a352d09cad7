// Package documents exposes per-document status polling and deletion.
package documents

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
)

// GetDocument handles GET /documents/:id. Clients poll this while the
// indexing job runs; progress moves from 0 to 1 as stages finish.
func GetDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		doc, err := deps.DocumentService.Repo().GetByUUID(ctx, c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		project, err := deps.ProjectRepo.GetByID(ctx, doc.ProjectID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		count, err := deps.DocumentService.Repo().CountChunks(ctx, doc.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NewDocumentResponse(doc, project.UUID, count))
	}
}

// DeleteDocument handles DELETE /documents/:id, removing the document
// and its chunks.
func DeleteDocument(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		doc, err := deps.DocumentService.Repo().GetByUUID(ctx, c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		if err := deps.DocumentService.Repo().Delete(ctx, doc.ID); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"status": types.StatusOK, "message": "document deleted"})
	}
}
