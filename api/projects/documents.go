package projects

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/extraction"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
)

// extensionMIMETypes covers uploads whose multipart part carries no
// usable content type.
var extensionMIMETypes = map[string]string{
	".txt":  extraction.MIMETypePlainText,
	".md":   extraction.MIMETypeMarkdown,
	".pdf":  extraction.MIMETypePDF,
	".docx": extraction.MIMETypeDOCX,
}

// UploadDocument handles POST /projects/:id/documents. The document is
// stored and recorded as uploading, then indexed asynchronously.
func UploadDocument(deps *types.Dependencies) gin.HandlerFunc {
	extractor := extraction.New()

	return func(c *gin.Context) {
		project, ok := lookupProject(c, deps)
		if !ok {
			return
		}

		file, err := c.FormFile("file")
		if err != nil {
			types.SendBadRequest(c, "missing file field")
			return
		}

		if deps.MaxUploadBytes > 0 && file.Size > deps.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, types.ErrorResponse{
				Error: "file exceeds the maximum upload size",
			})
			return
		}

		contentType := file.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = extensionMIMETypes[strings.ToLower(filepath.Ext(file.Filename))]
		}
		if !extractor.Supports(contentType) {
			c.JSON(http.StatusUnsupportedMediaType, types.ErrorResponse{
				Error: "unsupported document format: " + contentType,
			})
			return
		}

		docUUID := uuid.NewString()
		storedName := docUUID + strings.ToLower(filepath.Ext(file.Filename))
		if err := c.SaveUploadedFile(file, filepath.Join(deps.UploadDir, storedName)); err != nil {
			types.SendInternalError(c, "failed to store uploaded file")
			return
		}

		ctx := c.Request.Context()
		doc := &models.Document{
			UUID:             docUUID,
			ProjectID:        project.ID,
			Filename:         storedName,
			OriginalFilename: file.Filename,
			ContentType:      contentType,
			SizeBytes:        file.Size,
			Status:           models.DocumentStatusUploading,
		}
		if err := deps.DocumentService.Repo().Create(ctx, doc); err != nil {
			types.SendError(c, err)
			return
		}

		_, err = deps.JobService.EnqueueUniqueJob(ctx, models.JobTypeDocumentIndexing,
			models.JobPayload{jobs.PayloadKeyDocumentUUID: docUUID}, jobs.PayloadKeyDocumentUUID)
		if err != nil {
			if errors.Is(err, jobs.ErrQueueFull) {
				c.JSON(http.StatusServiceUnavailable, types.ErrorResponse{
					Error: "indexing queue is full, try again later",
				})
				return
			}
			types.SendError(c, err)
			return
		}

		types.SendCreated(c, types.NewDocumentResponse(doc, project.UUID, 0))
	}
}

// ListDocuments handles GET /projects/:id/documents
func ListDocuments(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, ok := lookupProject(c, deps)
		if !ok {
			return
		}

		ctx := c.Request.Context()
		docs, err := deps.DocumentService.Repo().ListByProject(ctx, project.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}

		responses := make([]types.DocumentResponse, 0, len(docs))
		for i := range docs {
			count, err := deps.DocumentService.Repo().CountChunks(ctx, docs[i].ID)
			if err != nil {
				types.SendError(c, err)
				return
			}
			responses = append(responses, types.NewDocumentResponse(&docs[i], project.UUID, count))
		}

		types.SendSuccess(c, gin.H{"documents": responses, "count": len(responses)})
	}
}
