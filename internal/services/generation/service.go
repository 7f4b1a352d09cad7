package generation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/documents"
	"github.com/voxcast/voxcast-api/internal/services/llm"
	"github.com/voxcast/voxcast-api/internal/services/search"
	"github.com/voxcast/voxcast-api/internal/services/synthesis"
)

// Service runs the podcast pipeline. A nil LLM client means offline mode:
// every drafting stage yields its scripted placeholder, and a configured
// client that fails mid-call degrades to the same placeholders so a run
// never aborts over a flaky upstream.
type Service struct {
	repo            Repository
	docs            documents.Repository
	llm             llm.Client
	searcher        search.Searcher
	synth           *synthesis.Service
	maxConceptChars int
}

// NewService creates the generation orchestrator. llmClient and searcher
// may be nil.
func NewService(repo Repository, docs documents.Repository, llmClient llm.Client, searcher search.Searcher, synth *synthesis.Service, maxConceptChars int) *Service {
	return &Service{
		repo:            repo,
		docs:            docs,
		llm:             llmClient,
		searcher:        searcher,
		synth:           synth,
		maxConceptChars: maxConceptChars,
	}
}

// Repo exposes the underlying repository for handlers that list runs and
// citations without going through the pipeline.
func (s *Service) Repo() Repository {
	return s.repo
}

// GeneratePodcast runs the full pipeline for one generation record and
// records the outcome on it. Re-invoking a finished run restarts it from
// scratch.
func (s *Service) GeneratePodcast(ctx context.Context, generationUUID string) (err error) {
	gen, err := s.repo.GetByUUID(ctx, generationUUID)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation pipeline panicked: %v", r)
			s.fail(gen, err)
		}
	}()

	if gen.Status != models.GenerationStatusQueued {
		if err := s.resetForRestart(ctx, gen); err != nil {
			return err
		}
	}

	s.checkpoint(ctx, gen, 5, "Analyzing documents...", map[string]interface{}{
		"status": models.GenerationStatusProcessing,
	})

	docs, err := s.docs.ListReadyByProject(ctx, gen.ProjectID)
	if err != nil {
		s.fail(gen, err)
		return err
	}
	if len(docs) == 0 {
		err := fmt.Errorf("no documents found")
		s.fail(gen, err)
		return err
	}

	s.checkpoint(ctx, gen, 20, "Extracting key concepts...", nil)
	concepts := s.extractConcepts(ctx, docs)

	s.checkpoint(ctx, gen, 40, "Creating conversation outline...", nil)
	outline := s.createOutline(ctx, concepts, gen.Settings)

	s.checkpoint(ctx, gen, 60, "Generating dialogue...", nil)
	turns := s.generateDialogue(ctx, outline, gen.Settings)

	s.checkpoint(ctx, gen, 80, "Synthesizing audio...", nil)
	result, err := s.synth.Synthesize(ctx, gen.UUID, turns, voiceMap(gen.Settings.Personas))
	if err != nil {
		s.fail(gen, err)
		return err
	}

	if s.searcher != nil {
		if err := s.writeCitations(ctx, gen, docs, turns); err != nil {
			// Citations are supplementary; the episode still completes
			log.Printf("[ERROR] Writing citations for generation %s: %v", gen.UUID, err)
		}
	}

	now := time.Now()
	s.checkpoint(ctx, gen, 100, "Complete!", map[string]interface{}{
		"status":           models.GenerationStatusCompleted,
		"audio_path":       result.AudioPath,
		"transcript_path":  result.TranscriptPath,
		"duration_seconds": result.DurationSeconds,
		"completed_at":     &now,
	})

	log.Printf("[DEBUG] Generation %s completed (%.1fs audio, placeholder=%t)",
		gen.UUID, result.DurationSeconds, result.Placeholder)
	return nil
}

// resetForRestart clears a previous outcome so the run starts clean
func (s *Service) resetForRestart(ctx context.Context, gen *models.AudioGeneration) error {
	log.Printf("[DEBUG] Restarting generation %s from status %s", gen.UUID, gen.Status)
	if err := s.repo.ReplaceCitations(ctx, gen.ID, nil); err != nil {
		return err
	}
	return s.repo.UpdateFields(ctx, gen.ID, map[string]interface{}{
		"status":           models.GenerationStatusQueued,
		"progress":         0,
		"current_step":     "",
		"audio_path":       nil,
		"transcript_path":  nil,
		"duration_seconds": nil,
		"error_message":    nil,
		"completed_at":     nil,
	})
}

// checkpoint persists a progress milestone. Persistence errors are logged
// and swallowed: a missed progress update must not kill the pipeline.
func (s *Service) checkpoint(ctx context.Context, gen *models.AudioGeneration, progress int, step string, extra map[string]interface{}) {
	fields := map[string]interface{}{
		"progress":     progress,
		"current_step": step,
	}
	for k, v := range extra {
		fields[k] = v
	}
	if err := s.repo.UpdateFields(ctx, gen.ID, fields); err != nil {
		log.Printf("[ERROR] Updating generation %s progress to %d: %v", gen.UUID, progress, err)
	}
}

func (s *Service) fail(gen *models.AudioGeneration, cause error) {
	// A fresh context: the pipeline's own context may already be cancelled
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fields := map[string]interface{}{
		"status":        models.GenerationStatusFailed,
		"error_message": sanitizeMessage(cause.Error()),
	}
	if err := s.repo.UpdateFields(ctx, gen.ID, fields); err != nil {
		log.Printf("[ERROR] Marking generation %s failed: %v", gen.UUID, err)
	}
	log.Printf("[ERROR] Generation %s failed: %v", gen.UUID, cause)
}

// sanitizeMessage strips internal error plumbing from user-facing messages
func sanitizeMessage(msg string) string {
	if idx := strings.Index(msg, " (caused by:"); idx > 0 {
		msg = msg[:idx]
	}
	if idx := strings.Index(msg, ": "); idx > 0 && strings.ToUpper(msg[:idx]) == msg[:idx] {
		msg = msg[idx+2:]
	}
	return msg
}

func (s *Service) extractConcepts(ctx context.Context, docs []models.Document) []string {
	if s.llm == nil {
		return placeholderConcepts()
	}

	prompt := buildConceptPrompt(docs, s.maxConceptChars)
	text, err := s.llm.Generate(ctx, prompt, conceptMaxTokens)
	if err != nil {
		log.Printf("[ERROR] Extracting concepts via %s: %v", s.llm.Name(), err)
		return fallbackConcepts()
	}

	concepts := parseConcepts(text)
	if len(concepts) == 0 {
		return fallbackConcepts()
	}
	return concepts
}

func (s *Service) createOutline(ctx context.Context, concepts []string, settings models.GenerationSettings) string {
	if s.llm == nil {
		return placeholderOutline
	}

	text, err := s.llm.Generate(ctx, buildOutlinePrompt(concepts, settings), outlineMaxTokens)
	if err != nil {
		log.Printf("[ERROR] Creating outline via %s: %v", s.llm.Name(), err)
		return fallbackOutline
	}
	return strings.TrimSpace(text)
}

func (s *Service) generateDialogue(ctx context.Context, outline string, settings models.GenerationSettings) []synthesis.Turn {
	if s.llm == nil {
		return placeholderDialogue(settings.Personas)
	}

	text, err := s.llm.Generate(ctx, buildDialoguePrompt(outline, settings), dialogueMaxTokens)
	if err != nil {
		log.Printf("[ERROR] Generating dialogue via %s: %v", s.llm.Name(), err)
		return fallbackDialogue()
	}

	turns := ParseDialogue(text)
	if len(turns) == 0 {
		return fallbackDialogue()
	}
	return turns
}

// writeCitations links each dialogue turn to its best-matching source
// chunk and stamps it with the turn's estimated playback offset.
func (s *Service) writeCitations(ctx context.Context, gen *models.AudioGeneration, docs []models.Document, turns []synthesis.Turn) error {
	docNames := make(map[uint]string, len(docs))
	for _, d := range docs {
		docNames[d.ID] = d.OriginalFilename
	}

	offsets := synthesis.EstimateOffsets(turns)
	var citations []models.Citation
	for i, turn := range turns {
		results, err := s.searcher.SearchChunks(ctx, gen.ProjectID, turn.Text, 1)
		if err != nil {
			return err
		}
		if len(results) == 0 {
			continue
		}

		best := results[0]
		citations = append(citations, models.Citation{
			DocumentID:  best.DocumentID,
			Timestamp:   offsets[i],
			DisplayText: docNames[best.DocumentID],
			Excerpt:     best.Content,
		})
	}

	return s.repo.ReplaceCitations(ctx, gen.ID, citations)
}

// voiceMap resolves each persona name to its configured voice
func voiceMap(personas []models.PersonaSnapshot) map[string]string {
	voices := make(map[string]string, len(personas))
	for _, p := range personas {
		if p.VoiceID != "" {
			voices[p.Name] = p.VoiceID
		}
	}
	return voices
}
