// Package personas exposes the persona roster: the built-in voices plus
// the caller's custom ones.
package personas

import (
	"github.com/gin-gonic/gin"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/models"
)

// callerID identifies the requesting user for custom persona ownership.
// There is no auth layer; the header is a cooperative namespace.
func callerID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "anonymous"
}

// CreatePersonaRequest is the payload for creating a custom persona
type CreatePersonaRequest struct {
	Name          string `json:"name" binding:"required"`
	Role          string `json:"role" binding:"required"`
	VoiceID       string `json:"voiceId"`
	Personality   string `json:"personality"`
	SpeakingStyle string `json:"speakingStyle"`
	Avatar        string `json:"avatar"`
}

// ListPersonas handles GET /personas
func ListPersonas(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		personas, err := deps.PersonaService.List(c.Request.Context(), callerID(c))
		if err != nil {
			types.SendError(c, err)
			return
		}

		responses := make([]types.PersonaResponse, 0, len(personas))
		for i := range personas {
			responses = append(responses, types.NewPersonaResponse(&personas[i]))
		}

		types.SendSuccess(c, gin.H{"personas": responses, "count": len(responses)})
	}
}

// CreatePersona handles POST /personas
func CreatePersona(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePersonaRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		persona := &models.Persona{
			Name:          req.Name,
			Role:          req.Role,
			VoiceID:       req.VoiceID,
			Personality:   req.Personality,
			SpeakingStyle: req.SpeakingStyle,
			Avatar:        req.Avatar,
		}
		if err := deps.PersonaService.CreateCustom(c.Request.Context(), persona, callerID(c)); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.NewPersonaResponse(persona))
	}
}

// DeletePersona handles DELETE /personas/:id
func DeletePersona(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.PersonaService.DeleteCustom(c.Request.Context(), c.Param("id"), callerID(c)); err != nil {
			types.SendError(c, err)
			return
		}

		types.SendSuccess(c, gin.H{"status": types.StatusOK, "message": "persona deleted"})
	}
}
