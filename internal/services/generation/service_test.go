package generation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/models"
	"github.com/voxcast/voxcast-api/internal/services/documents"
	"github.com/voxcast/voxcast-api/internal/services/embeddings"
	"github.com/voxcast/voxcast-api/internal/services/llm"
	"github.com/voxcast/voxcast-api/internal/services/search"
	"github.com/voxcast/voxcast-api/internal/services/synthesis"
)

type failingLLM struct{}

func (f *failingLLM) Generate(_ context.Context, _ string, _ int) (string, error) {
	return "", errors.New("model overloaded")
}

func (f *failingLLM) Name() string { return "failing-stub" }

// scriptedLLM returns canned responses in call order
type scriptedLLM struct {
	responses []string
	calls     int
}

func (s *scriptedLLM) Generate(_ context.Context, _ string, _ int) (string, error) {
	if s.calls >= len(s.responses) {
		return "", errors.New("no scripted response left")
	}
	resp := s.responses[s.calls]
	s.calls++
	return resp, nil
}

func (s *scriptedLLM) Name() string { return "scripted-stub" }

type generationFixture struct {
	db       *database.DB
	repo     Repository
	docs     documents.Repository
	embedder embeddings.Embedder
	project  *models.Project
}

func setupFixture(t *testing.T) *generationFixture {
	t.Helper()
	db, err := database.Initialize(filepath.Join(t.TempDir(), "test.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	project := &models.Project{UUID: "proj-1", Name: "Research Digest"}
	require.NoError(t, db.DB.Create(project).Error)

	return &generationFixture{
		db:       db,
		repo:     NewRepository(db.DB),
		docs:     documents.NewRepository(db),
		embedder: embeddings.NewLocalEmbedder(models.EmbeddingDimensions),
		project:  project,
	}
}

func (f *generationFixture) newService(t *testing.T, llmClient llm.Client) *Service {
	t.Helper()
	searcher := search.NewService(search.NewGormChunkReader(f.db), f.embedder)
	synth := synthesis.NewService(nil, nil, t.TempDir())
	return NewService(f.repo, f.docs, llmClient, searcher, synth, 50000)
}

func (f *generationFixture) addReadyDocument(t *testing.T, name string, paragraphs []string) *models.Document {
	t.Helper()
	content := strings.Join(paragraphs, "\n\n")
	doc := &models.Document{
		UUID:             "doc-" + name,
		ProjectID:        f.project.ID,
		Filename:         name + ".txt",
		OriginalFilename: name + ".txt",
		ContentType:      "text/plain",
		SizeBytes:        int64(len(content)),
		Content:          &content,
		Status:           models.DocumentStatusReady,
		Progress:         1.0,
	}
	require.NoError(t, f.db.DB.Create(doc).Error)

	for i, p := range paragraphs {
		vec, err := f.embedder.Embed(context.Background(), p)
		require.NoError(t, err)
		chunk := models.DocumentChunk{
			DocumentID: doc.ID,
			ChunkIndex: i,
			Content:    p,
			Embedding:  vec,
		}
		require.NoError(t, f.db.DB.Create(&chunk).Error)
	}
	return doc
}

func (f *generationFixture) createGeneration(t *testing.T, uuid string) *models.AudioGeneration {
	t.Helper()
	estimated := 90
	gen := &models.AudioGeneration{
		UUID:      uuid,
		ProjectID: f.project.ID,
		Status:    models.GenerationStatusQueued,
		Settings: models.GenerationSettings{
			Duration:      models.DurationMedium,
			Tone:          models.ToneBalanced,
			CitationStyle: models.CitationStyleTimestamps,
			Personas: []models.PersonaSnapshot{
				{Name: "Dr. Sarah Chen", Role: "Host", VoiceID: "voice_1", Personality: "Warm and curious", SpeakingStyle: "Clear and engaging"},
				{Name: "Alex Kim", Role: "Curious Student", VoiceID: "voice_3", Personality: "Eager to learn", SpeakingStyle: "Casual"},
			},
		},
		EstimatedSeconds: &estimated,
	}
	require.NoError(t, f.repo.Create(context.Background(), gen))
	return gen
}

func TestGeneratePodcastOffline(t *testing.T) {
	f := setupFixture(t)
	f.addReadyDocument(t, "climate", []string{
		"Global temperatures have risen steadily over the last century.",
		"Renewable energy adoption is accelerating across most regions.",
	})
	gen := f.createGeneration(t, "gen-1")

	svc := f.newService(t, nil)
	require.NoError(t, svc.GeneratePodcast(context.Background(), gen.UUID))

	updated, err := f.repo.GetByUUID(context.Background(), gen.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.GenerationStatusCompleted, updated.Status)
	assert.Equal(t, 100, updated.Progress)
	assert.Equal(t, "Complete!", updated.CurrentStep)
	assert.NotNil(t, updated.CompletedAt)
	require.NotNil(t, updated.AudioPath)
	assert.FileExists(t, *updated.AudioPath)
	require.NotNil(t, updated.DurationSeconds)
	assert.InDelta(t, 30.0, *updated.DurationSeconds, 0.05)

	// The offline script speaks through the requested personas
	require.NotNil(t, updated.TranscriptPath)
	transcript, err := os.ReadFile(*updated.TranscriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(transcript), "Dr. Sarah Chen:")
	assert.Contains(t, string(transcript), "Alex Kim:")

	citations, err := f.repo.ListCitations(context.Background(), updated.ID)
	require.NoError(t, err)
	require.NotEmpty(t, citations)
	assert.Equal(t, "climate.txt", citations[0].DisplayText)
	assert.NotEmpty(t, citations[0].Excerpt)
}

func TestGeneratePodcastNoDocuments(t *testing.T) {
	f := setupFixture(t)
	gen := f.createGeneration(t, "gen-empty")

	svc := f.newService(t, nil)
	err := svc.GeneratePodcast(context.Background(), gen.UUID)
	require.Error(t, err)

	updated, getErr := f.repo.GetByUUID(context.Background(), gen.UUID)
	require.NoError(t, getErr)
	assert.Equal(t, models.GenerationStatusFailed, updated.Status)
	require.NotNil(t, updated.ErrorMessage)
	assert.Contains(t, *updated.ErrorMessage, "no documents found")
}

func TestGeneratePodcastFailingLLMFallsBack(t *testing.T) {
	f := setupFixture(t)
	f.addReadyDocument(t, "notes", []string{"A short paragraph about distributed systems."})
	gen := f.createGeneration(t, "gen-degraded")

	svc := f.newService(t, &failingLLM{})
	require.NoError(t, svc.GeneratePodcast(context.Background(), gen.UUID))

	updated, err := f.repo.GetByUUID(context.Background(), gen.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.GenerationStatusCompleted, updated.Status)
	assert.Nil(t, updated.ErrorMessage)
}

func TestGeneratePodcastScriptedDialogue(t *testing.T) {
	f := setupFixture(t)
	f.addReadyDocument(t, "paper", []string{"Transformers changed natural language processing."})
	gen := f.createGeneration(t, "gen-scripted")

	client := &scriptedLLM{responses: []string{
		"- Attention mechanisms\n- Transfer learning\n- Scaling laws",
		"1. Introduction\n2. Attention deep dive\n3. Closing thoughts",
		"Dr. Sarah Chen: Today we unpack attention mechanisms.\nAlex Kim: I always wondered how those work!\nThis narration line has no separator\nDr. Sarah Chen: Let's start from the basics.",
	}}

	svc := f.newService(t, client)
	require.NoError(t, svc.GeneratePodcast(context.Background(), gen.UUID))
	assert.Equal(t, 3, client.calls)

	updated, err := f.repo.GetByUUID(context.Background(), gen.UUID)
	require.NoError(t, err)
	require.NotNil(t, updated.TranscriptPath)
	transcript, err := os.ReadFile(*updated.TranscriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(transcript), "Dr. Sarah Chen: Today we unpack attention mechanisms.")
	assert.Contains(t, string(transcript), "Alex Kim: I always wondered how those work!")
	assert.NotContains(t, string(transcript), "no separator")
}

func TestGeneratePodcastRestartReplacesCitations(t *testing.T) {
	f := setupFixture(t)
	f.addReadyDocument(t, "history", []string{
		"The printing press transformed how knowledge spread.",
		"Literacy rates climbed in the centuries that followed.",
	})
	gen := f.createGeneration(t, "gen-restart")

	svc := f.newService(t, nil)
	require.NoError(t, svc.GeneratePodcast(context.Background(), gen.UUID))

	first, err := f.repo.ListCitations(context.Background(), gen.ID)
	require.NoError(t, err)

	// Re-running a completed generation starts over instead of stacking
	require.NoError(t, svc.GeneratePodcast(context.Background(), gen.UUID))
	second, err := f.repo.ListCitations(context.Background(), gen.ID)
	require.NoError(t, err)
	assert.Len(t, second, len(first))

	updated, err := f.repo.GetByUUID(context.Background(), gen.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.GenerationStatusCompleted, updated.Status)
}

func TestParseDialogue(t *testing.T) {
	turns := ParseDialogue("Alice: Hello there\nBob: Hi!\nnotaline\n: empty speaker\nAlice:\n")
	require.Len(t, turns, 2)
	assert.Equal(t, synthesis.Turn{Speaker: "Alice", Text: "Hello there"}, turns[0])
	assert.Equal(t, synthesis.Turn{Speaker: "Bob", Text: "Hi!"}, turns[1])
}

func TestParseConcepts(t *testing.T) {
	concepts := parseConcepts("- First concept\n* Second concept\n3. Third concept\n\n  Fourth concept  \n")
	assert.Equal(t, []string{"First concept", "Second concept", "Third concept", "Fourth concept"}, concepts)
}

func TestParseConceptsCapped(t *testing.T) {
	var lines []string
	for i := 0; i < 15; i++ {
		lines = append(lines, fmt.Sprintf("- Concept %c", 'a'+i))
	}
	assert.Len(t, parseConcepts(strings.Join(lines, "\n")), maxConcepts)
}

func TestBuildConceptPromptTruncates(t *testing.T) {
	long := strings.Repeat("x", 200)
	doc := models.Document{Content: &long}
	prompt := buildConceptPrompt([]models.Document{doc}, 100)
	assert.Contains(t, prompt, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, prompt, strings.Repeat("x", 101))
}
