package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	apperrors "github.com/voxcast/voxcast-api/pkg/errors"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/generation"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
)

// GenerationProcessor processes podcast generation jobs
type GenerationProcessor struct {
	jobService jobs.Service
	generator  generation.Generator
	gens       generation.Repository
}

// NewGenerationProcessor creates a new generation processor
func NewGenerationProcessor(jobService jobs.Service, generator generation.Generator, gens generation.Repository) *GenerationProcessor {
	return &GenerationProcessor{
		jobService: jobService,
		generator:  generator,
		gens:       gens,
	}
}

// CanProcess returns true if this processor can handle the job type
func (p *GenerationProcessor) CanProcess(jobType models.JobType) bool {
	return jobType == models.JobTypePodcastGeneration
}

// ProcessJob runs the podcast pipeline for the generation named in the payload
func (p *GenerationProcessor) ProcessJob(ctx context.Context, job *models.Job) error {
	if !p.CanProcess(job.Type) {
		return fmt.Errorf("unsupported job type: %s", job.Type)
	}

	generationUUID, ok := job.GetPayloadString(jobs.PayloadKeyGenerationUUID)
	if !ok {
		return models.NewSystemError("invalid_payload", "generation_uuid not found in payload", "", nil)
	}

	log.Printf("Processing podcast generation job %d for generation %s", job.ID, generationUUID)

	if err := p.jobService.UpdateProgress(ctx, job.ID, 10); err != nil {
		log.Printf("Failed to update job progress: %v", err)
	}

	if err := p.generator.GeneratePodcast(ctx, generationUUID); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			p.markGenerationFailed(generationUUID, "generation timed out")
			return models.NewTimeoutError("generation_timeout",
				fmt.Sprintf("generating podcast %s timed out", generationUUID), "", err)
		}
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return models.NewNotFoundError("generation_missing",
				fmt.Sprintf("generation %s not found", generationUUID), "", err)
		}
		// The pipeline already marked the generation record as failed
		return models.NewGenerationError("generation_failed", err.Error(), "", err)
	}

	result := models.JobResult{"generation_uuid": generationUUID}
	if err := p.jobService.CompleteJob(ctx, job.ID, result); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}

	log.Printf("Podcast generation completed for %s", generationUUID)
	return nil
}

// markGenerationFailed records the failure on the generation record. A
// fresh context: the job context has already expired.
func (p *GenerationProcessor) markGenerationFailed(generationUUID, message string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gen, err := p.gens.GetByUUID(ctx, generationUUID)
	if err != nil {
		log.Printf("[ERROR] Looking up generation %s to mark failed: %v", generationUUID, err)
		return
	}
	fields := map[string]interface{}{
		"status":        models.GenerationStatusFailed,
		"error_message": message,
	}
	if err := p.gens.UpdateFields(ctx, gen.ID, fields); err != nil {
		log.Printf("[ERROR] Marking generation %s failed: %v", generationUUID, err)
	}
}
