// Package projects exposes the project resource plus its nested
// document, search, and generation endpoints.
package projects

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/models"
)

// CreateProjectRequest is the payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateProject handles POST /projects
func CreateProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProjectRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		project := &models.Project{
			UUID:        uuid.NewString(),
			Name:        req.Name,
			Description: req.Description,
		}
		if err := deps.ProjectRepo.Create(c.Request.Context(), project); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.NewProjectResponse(project, 0))
	}
}

// ListProjects handles GET /projects
func ListProjects(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := deps.ProjectRepo.List(ctx)
		if err != nil {
			types.SendError(c, err)
			return
		}

		responses := make([]types.ProjectResponse, 0, len(projects))
		for i := range projects {
			docs, err := deps.DocumentService.Repo().ListByProject(ctx, projects[i].ID)
			if err != nil {
				types.SendError(c, err)
				return
			}
			responses = append(responses, types.NewProjectResponse(&projects[i], len(docs)))
		}

		types.SendSuccess(c, gin.H{"projects": responses, "count": len(responses)})
	}
}

// GetProject handles GET /projects/:id
func GetProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		project, err := deps.ProjectRepo.GetByUUID(ctx, c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		docs, err := deps.DocumentService.Repo().ListByProject(ctx, project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, types.NewProjectResponse(project, len(docs)))
	}
}

// DeleteProject handles DELETE /projects/:id
func DeleteProject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		project, err := deps.ProjectRepo.GetByUUID(ctx, c.Param("id"))
		if err != nil {
			types.SendError(c, err)
			return
		}

		if err := deps.ProjectRepo.Delete(ctx, project.ID); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"status": types.StatusOK, "message": "project deleted"})
	}
}

// lookupProject resolves the :id path parameter, sending the error
// response itself on failure.
func lookupProject(c *gin.Context, deps *types.Dependencies) (*models.Project, bool) {
	project, err := deps.ProjectRepo.GetByUUID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			types.SendNotFound(c, "project not found")
		} else {
			types.SendError(c, err)
		}
		return nil, false
	}
	return project, true
}
