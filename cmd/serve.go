package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/voxcast/voxcast-api/api"
	"github.com/voxcast/voxcast-api/api/types"
	"github.com/voxcast/voxcast-api/internal/database"
	"github.com/voxcast/voxcast-api/internal/services/documents"
	"github.com/voxcast/voxcast-api/internal/services/embeddings"
	"github.com/voxcast/voxcast-api/internal/services/extraction"
	"github.com/voxcast/voxcast-api/internal/services/generation"
	"github.com/voxcast/voxcast-api/internal/services/jobs"
	"github.com/voxcast/voxcast-api/internal/services/llm"
	"github.com/voxcast/voxcast-api/internal/services/personas"
	"github.com/voxcast/voxcast-api/internal/services/projects"
	"github.com/voxcast/voxcast-api/internal/services/search"
	"github.com/voxcast/voxcast-api/internal/services/synthesis"
	"github.com/voxcast/voxcast-api/internal/services/tts"
	"github.com/voxcast/voxcast-api/internal/services/workers"
	"github.com/voxcast/voxcast-api/pkg/config"
	"github.com/voxcast/voxcast-api/pkg/ffmpeg"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Voxcast Studio API server with the configured settings.

The server exposes project, document, search, generation, and persona
endpoints, and runs the background worker pool that processes indexing
and generation jobs.

Example:
  voxcast-api serve
  voxcast-api serve --port 9090
  voxcast-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("migrating database: %w", err)
	}

	for _, dir := range []string{cfg.Storage.UploadDir, cfg.Storage.AudioDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating storage directory %s: %w", dir, err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps, pool, err := buildDependencies(ctx, cfg, db)
	if err != nil {
		return err
	}

	if err := pool.Start(ctx); err != nil {
		return fmt.Errorf("starting worker pool: %w", err)
	}
	defer pool.Stop()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDatabase(db)
	server.SetDependencies(deps)
	if err := server.Initialize(); err != nil {
		return fmt.Errorf("initializing server: %w", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	log.Printf("Voxcast Studio API listening on %s", address)

	select {
	case <-stop:
		log.Println("Shutting down server...")
	case err := <-serverErr:
		log.Printf("%v", err)
		log.Println("Shutting down server...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Println("Server gracefully stopped")
	return nil
}

// buildDependencies wires the full service graph behind the HTTP layer
// and the worker pool that drains the job queue.
func buildDependencies(ctx context.Context, cfg *config.Config, db *database.DB) (*types.Dependencies, *workers.WorkerPool, error) {
	embedder := embeddings.NewFromConfig(cfg)
	extractor := extraction.New()

	docsRepo := documents.NewRepository(db)
	docService := documents.NewService(docsRepo, extractor, embedder,
		cfg.Storage.UploadDir, cfg.Processing.ChunkSize, cfg.Processing.ChunkOverlap)

	searchService := search.NewService(search.NewGormChunkReader(db), embedder)

	llmClient, err := llm.NewFromConfig(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("configuring language model client: %w", err)
	}
	ttsClient := tts.NewFromConfig(cfg)

	// A missing ffmpeg keeps the server functional: synthesis degrades
	// to the placeholder artifact.
	ff := ffmpeg.New(cfg.Processing.FFmpegPath, cfg.Processing.FFprobePath, cfg.Processing.JobTimeout)
	if err := ff.ValidateBinaries(); err != nil {
		log.Printf("[DEBUG] ffmpeg unavailable, audio assembly disabled: %v", err)
		ff = nil
	}

	synth := synthesis.NewService(ttsClient, ff, cfg.Storage.AudioDir)

	genRepo := generation.NewRepository(db.DB)
	genService := generation.NewService(genRepo, docsRepo, llmClient, searchService, synth, cfg.AI.MaxConceptChars)

	jobService := jobs.NewService(jobs.NewRepository(db.DB), cfg.Processing.MaxQueueSize)

	pool := workers.NewWorkerPool(jobService, cfg.Processing.Workers,
		cfg.Processing.PollInterval, cfg.Processing.JobTimeout)
	pool.RegisterProcessor(workers.NewIndexingProcessor(jobService, docService, docsRepo))
	pool.RegisterProcessor(workers.NewGenerationProcessor(jobService, genService, genRepo))

	deps := &types.Dependencies{
		DB:              db,
		ProjectRepo:     projects.NewRepository(db),
		DocumentService: docService,
		GenerationRepo:  genRepo,
		PersonaService:  personas.NewService(personas.NewRepository(db)),
		JobService:      jobService,
		SearchService:   searchService,
		WorkerPool:      pool,
		UploadDir:       cfg.Storage.UploadDir,
		AudioDir:        cfg.Storage.AudioDir,
		MaxUploadBytes:  cfg.Storage.MaxFileSize,
	}
	return deps, pool, nil
}
