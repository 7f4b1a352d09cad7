package types

import (
	"fmt"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/search"
)

// NewProjectResponse transforms a project model for the wire
func NewProjectResponse(p *models.Project, documentCount int) ProjectResponse {
	return ProjectResponse{
		UUID:          p.UUID,
		Name:          p.Name,
		Description:   p.Description,
		DocumentCount: documentCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// NewDocumentResponse transforms a document model for the wire
func NewDocumentResponse(d *models.Document, projectUUID string, chunkCount int64) DocumentResponse {
	return DocumentResponse{
		UUID:         d.UUID,
		ProjectID:    projectUUID,
		Filename:     d.OriginalFilename,
		ContentType:  d.ContentType,
		SizeBytes:    d.SizeBytes,
		Status:       string(d.Status),
		Progress:     d.Progress,
		ChunkCount:   chunkCount,
		ErrorMessage: d.ErrorMessage,
		CreatedAt:    d.CreatedAt,
	}
}

// NewGenerationResponse transforms a generation model for the wire. The
// audio artifact is exposed as a URL, never as a filesystem path.
func NewGenerationResponse(g *models.AudioGeneration, projectUUID string) GenerationResponse {
	resp := GenerationResponse{
		UUID:             g.UUID,
		ProjectID:        projectUUID,
		Status:           string(g.Status),
		Progress:         g.Progress,
		CurrentStep:      g.CurrentStep,
		Settings:         g.Settings,
		DurationSeconds:  g.DurationSeconds,
		EstimatedSeconds: g.EstimatedSeconds,
		CreatedAt:        g.CreatedAt,
		CompletedAt:      g.CompletedAt,
	}
	if g.AudioPath != nil {
		resp.AudioURL = fmt.Sprintf("/api/v1/generations/%s/audio", g.UUID)
	}
	if g.ErrorMessage != nil {
		resp.ErrorMessage = *g.ErrorMessage
	}
	return resp
}

// NewCitationResponse transforms a citation model for the wire
func NewCitationResponse(cit *models.Citation, documentUUID string) CitationResponse {
	return CitationResponse{
		DocumentID:  documentUUID,
		Timestamp:   cit.Timestamp,
		DisplayText: cit.DisplayText,
		Excerpt:     cit.Excerpt,
		PageNumber:  cit.PageNumber,
	}
}

// NewPersonaResponse transforms a persona model for the wire
func NewPersonaResponse(p *models.Persona) PersonaResponse {
	return PersonaResponse{
		UUID:          p.UUID,
		Name:          p.Name,
		Role:          p.Role,
		VoiceID:       p.VoiceID,
		Personality:   p.Personality,
		SpeakingStyle: p.SpeakingStyle,
		Avatar:        p.Avatar,
		IsCustom:      p.IsCustom,
	}
}

// NewSearchResponse transforms ranked results for the wire
func NewSearchResponse(query string, results []search.Result, docUUIDs map[uint]string) SearchResponse {
	out := make([]SearchResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, SearchResultResponse{
			DocumentID: docUUIDs[r.DocumentID],
			ChunkIndex: r.ChunkIndex,
			Content:    r.Content,
			Score:      r.Score,
		})
	}
	return SearchResponse{Query: query, Results: out, Count: len(out)}
}
