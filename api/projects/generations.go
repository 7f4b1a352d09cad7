package projects

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
)

// CreateGeneration handles POST /projects/:id/generations. The settings
// are validated and frozen onto the record, which is queued for the
// worker pool.
func CreateGeneration(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := lookupProject(c, deps)
		if !ok {
			return
		}

		var settings models.GenerationSettings
		if !types.BindJSONOrError(c, &settings) {
			return
		}
		if err := settings.Validate(); err != nil {
			types.SendBadRequest(c, err.Error())
			return
		}

		ctx := c.Request.Context()
		estimated := settings.EstimatedSeconds()
		gen := &models.AudioGeneration{
			UUID:             uuid.NewString(),
			ProjectID:        project.ID,
			Status:           models.GenerationStatusQueued,
			Settings:         settings,
			EstimatedSeconds: &estimated,
		}
		if err := deps.GenerationRepo.Create(ctx, gen); err != nil {
			types.SendError(c, err)
			return
		}

		_, err := deps.JobService.EnqueueUniqueJob(ctx, models.JobTypePodcastGeneration,
			models.JobPayload{jobs.PayloadKeyGenerationUUID: gen.UUID}, jobs.PayloadKeyGenerationUUID)
		if err != nil {
			if errors.Is(err, jobs.ErrQueueFull) {
				c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
					Error: "generation queue is full, try again later",
				})
				return
			}
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.NewGenerationResponse(gen, project.UUID))
	}
}

// ListGenerations handles GET /projects/:id/generations
func ListGenerations(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := lookupProject(c, deps)
		if !ok {
			return
		}

		gens, err := deps.GenerationRepo.ListByProject(c.Request.Context(), project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		responses := make([]types.GenerationResponse, 0, len(gens))
		for i := range gens {
			responses = append(responses, types.NewGenerationResponse(&gens[i], project.UUID))
		}

		types.SendSuccess(c, gin.H{"generations": responses, "count": len(responses)})
	}
}
