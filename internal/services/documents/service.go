package documents

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/chunker"
	"github.com/voxcast/voxcast-api/internal/services/embeddings"
	"github.com/voxcast/voxcast-api/internal/services/extraction"
)

// Service is the indexing orchestrator. It owns every document status
// transition after upload: uploading → processing → {ready|error}, never
// backwards. Re-running a ready or errored document re-extracts and fully
// replaces its chunks.
type Service struct {
	repo         Repository
	extractor    *extraction.Service
	embedder     embeddings.Embedder
	uploadDir    string
	chunkSize    int
	chunkOverlap int
}

// NewService creates a new indexing orchestrator
func NewService(repo Repository, extractor *extraction.Service, embedder embeddings.Embedder, uploadDir string, chunkSize, chunkOverlap int) *Service {
	return &Service{
		repo:         repo,
		extractor:    extractor,
		embedder:     embedder,
		uploadDir:    uploadDir,
		chunkSize:    chunkSize,
		chunkOverlap: chunkOverlap,
	}
}

// Repo exposes the underlying repository to the API layer
func (s *Service) Repo() Repository {
	return s.repo
}

// ProcessDocument runs the indexing pipeline for one document. Any failure
// leaves the document in status error with zero partial chunks and a stored
// human-readable message; the error is also returned so the job queue can
// record it.
func (s *Service) ProcessDocument(ctx context.Context, documentUUID string) error {
	doc, err := s.repo.GetByUUID(ctx, documentUUID)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateFields(ctx, doc.ID, map[string]interface{}{
		"status":        models.DocumentStatusProcessing,
		"progress":      0.1,
		"error_message": "",
	}); err != nil {
		return err
	}

	text, err := s.extractor.Extract(ctx, filepath.Join(s.uploadDir, doc.Filename), doc.ContentType)
	if err != nil {
		return s.fail(ctx, doc.ID, sanitizeMessage(err), err)
	}
	if strings.TrimSpace(text) == "" {
		emptyErr := fmt.Errorf("no text content found in document")
		return s.fail(ctx, doc.ID, emptyErr.Error(), emptyErr)
	}

	if err := s.repo.UpdateFields(ctx, doc.ID, map[string]interface{}{
		"content":  text,
		"progress": 0.4,
	}); err != nil {
		return err
	}

	pieces, err := chunker.Split(text, s.chunkSize, s.chunkOverlap)
	if err != nil {
		return s.fail(ctx, doc.ID, sanitizeMessage(err), err)
	}

	chunks := make([]models.DocumentChunk, 0, len(pieces))
	for i, piece := range pieces {
		embedding, err := s.embedder.Embed(ctx, piece)
		if err != nil {
			return s.fail(ctx, doc.ID, "embedding failed", err)
		}
		chunks = append(chunks, models.DocumentChunk{
			DocumentID: doc.ID,
			ChunkIndex: i,
			Content:    piece,
			Embedding:  embedding,
			Metadata:   models.ChunkMetadata{"word_count": len(strings.Fields(piece))},
		})
	}

	if err := s.repo.UpdateFields(ctx, doc.ID, map[string]interface{}{"progress": 0.8}); err != nil {
		return err
	}

	// Whole-document batch: a partial failure rolls back every chunk so the
	// document is never ready with an incomplete set
	if err := s.repo.ReplaceChunks(ctx, doc.ID, chunks); err != nil {
		return s.fail(ctx, doc.ID, "failed to store document chunks", err)
	}

	if err := s.repo.UpdateFields(ctx, doc.ID, map[string]interface{}{
		"status":   models.DocumentStatusReady,
		"progress": 1.0,
	}); err != nil {
		return err
	}

	log.Printf("Indexed document %s: %d chunks", documentUUID, len(chunks))
	return nil
}

// fail marks the document errored and discards any chunks written so far
func (s *Service) fail(ctx context.Context, docID uint, message string, cause error) error {
	log.Printf("[ERROR] Indexing document %d failed: %v", docID, cause)

	if err := s.repo.ReplaceChunks(ctx, docID, nil); err != nil {
		log.Printf("[ERROR] Failed to discard chunks for document %d: %v", docID, err)
	}
	if err := s.repo.UpdateFields(ctx, docID, map[string]interface{}{
		"status":        models.DocumentStatusError,
		"error_message": message,
	}); err != nil {
		log.Printf("[ERROR] Failed to mark document %d errored: %v", docID, err)
	}
	return cause
}

// sanitizeMessage keeps the stored message human-readable: the structured
// error's own message without wrapped causes or stack detail.
func sanitizeMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, " (caused by:"); idx > 0 {
		msg = msg[:idx]
	}
	// Drop the CODE: prefix structured errors carry
	if idx := strings.Index(msg, ": "); idx > 0 && strings.ToUpper(msg[:idx]) == msg[:idx] {
		msg = msg[idx+2:]
	}
	return msg
}
