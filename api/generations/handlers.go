// Package generations exposes generation polling, citations, and the
// produced audio and transcript artifacts.
package generations

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/models"
)

// GetGeneration handles GET /generations/:id. Clients poll this while
// the run is queued or processing; progress moves 0-100 with
// current_step naming the stage.
func GetGeneration(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, project, ok := lookupGeneration(c, deps)
		if !ok {
			return
		}
		types.SendSuccess(c, types.NewGenerationResponse(gen, project.UUID))
	}
}

// GetCitations handles GET /generations/:id/citations
func GetCitations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, project, ok := lookupGeneration(c, deps)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		citations, err := deps.GenerationRepo.ListCitations(ctx, gen.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		docs, err := deps.DocumentService.Repo().ListByProject(ctx, project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		docUUIDs := make(map[uint]string, len(docs))
		for _, d := range docs {
			docUUIDs[d.ID] = d.UUID
		}

		responses := make([]types.CitationResponse, 0, len(citations))
		for i := range citations {
			responses = append(responses, types.NewCitationResponse(&citations[i], docUUIDs[citations[i].DocumentID]))
		}

		types.SendSuccess(c, gin.H{"citations": responses, "count": len(responses)})
	}
}

// GetAudio handles GET /generations/:id/audio, serving the artifact file
func GetAudio(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, _, ok := lookupGeneration(c, deps)
		if !ok {
			return
		}

		if gen.AudioPath == nil {
			types.SendNotFound(c, "no audio available for this generation")
			return
		}
		if _, err := os.Stat(*gen.AudioPath); err != nil {
			types.SendNotFound(c, "audio artifact is no longer available")
			return
		}

		c.File(*gen.AudioPath)
	}
}

// GetTranscript handles GET /generations/:id/transcript
func GetTranscript(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		gen, _, ok := lookupGeneration(c, deps)
		if !ok {
			return
		}

		if gen.TranscriptPath == nil {
			types.SendNotFound(c, "no transcript available for this generation")
			return
		}
		if _, err := os.Stat(*gen.TranscriptPath); err != nil {
			types.SendNotFound(c, "transcript artifact is no longer available")
			return
		}

		c.File(*gen.TranscriptPath)
	}
}

// lookupGeneration resolves the :id path parameter and the owning
// project, sending the error response itself on failure.
func lookupGeneration(c *gin.Context, deps *types.Dependencies) (*models.AudioGeneration, *models.Project, bool) {
	ctx := c.Request.Context()
	gen, err := deps.GenerationRepo.GetByUUID(ctx, c.Param("id"))
	if err != nil {
		types.SendError(c, err)
		return nil, nil, false
	}

	project, err := deps.ProjectRepo.GetByID(ctx, gen.ProjectID)
	if err != nil {
		types.SendError(c, err)
		return nil, nil, false
	}
	return gen, project, true
}
