package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/documents"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
)

// IndexingProcessor processes document indexing jobs
type IndexingProcessor struct {
	jobService jobs.Service
	indexer    documents.Indexer
	docs       documents.Repository
}

// NewIndexingProcessor creates a new indexing processor
func NewIndexingProcessor(jobService jobs.Service, indexer documents.Indexer, docs documents.Repository) *IndexingProcessor {
	return &IndexingProcessor{
		jobService: jobService,
		indexer:    indexer,
		docs:       docs,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *IndexingProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypeDocumentIndexing
}

// ProcessJob runs the indexing pipeline for the document named in the payload
func (p *IndexingProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	documentUUID, ok := job.GetPayloadString(jobs.PayloadKeyDocumentUUID)
	if !ok {
		return models.NewSystemError("invalid_payload", "document_uuid not found in payload", "", nil)
	}

	log.Printf("Processing document indexing job %d for document %s", job.ID, documentUUID)

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("Failed to update job progress: %v", err)
	}

	if err := p.indexer.ProcessDocument(ctx, documentUUID); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.markDocumentFailed(documentUUID, "indexing timed out")
			return models.NewTimeoutError("indexing_timeout",
				fmt.Sprintf("indexing document %s timed out", documentUUID), "", err)
		}
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return models.NewNotFoundError("document_missing",
				fmt.Sprintf("document %s not found", documentUUID), "", err)
		}
		// The indexer already marked the document record as errored
		return models.NewExtractionError("indexing_failed", err.Error(), "", err)
	}

	chunkCount := p.countChunks(ctx, documentUUID)
	result := models.JobResult{
		"document_uuid": documentUUID,
		"chunk_count":   chunkCount,
	}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("Document indexing completed for %s (%d chunks)", documentUUID, chunkCount)
	return nil
}

// markDocumentFailed records the failure on the document record. A fresh
// context: the job context has already expired.
func (p *IndexingProcessor) markDocumentFailed(documentUUID, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := p.docs.GetByUUID(ctx, documentUUID)
	if err != nil {
		log.Printf("[ERROR] Looking up document %s to mark failed: %v", documentUUID, err)
		return
	}
	fields := map[string]interface{}{
		"status":        models.DocumentStatusError,
		"error_message": message,
	}
	if err := p.docs.UpdateFields(ctx, doc.ID, fields); err != nil {
		log.Printf("[ERROR] Marking document %s failed: %v", documentUUID, err)
	}
}

func (p *IndexingProcessor) countChunks(ctx context.Context, documentUUID string) int64 {
	doc, err := p.docs.GetByUUID(ctx, documentUUID)
	if err != nil {
		return 0
	}
	count, err := p.docs.CountChunks(ctx, doc.ID)
	if err != nil {
		return 0
	}
	return count
}
