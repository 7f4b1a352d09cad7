package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
)

var (
	once    sync.Once
	initErr error
)

// Init initializes the configuration system.
// This should be called once at application startup.
func Init() error {
	once.Do(func() {
		setDefaults()

		// Environment variable overrides
		viper.SetEnvPrefix("VOXCAST")
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		configPath := filepath.Clean("./config/settings.yaml")
		viper.SetConfigFile(configPath)

		if err := viper.ReadInConfig(); err != nil {
			// Missing config file is fine - defaults and env vars apply
			if !os.IsNotExist(err) {
				initErr = fmt.Errorf("error reading config file %s: %w", configPath, err)
				return
			}
		}

		if err := validate(); err != nil {
			initErr = fmt.Errorf("invalid configuration: %w", err)
		}
	})

	return initErr
}

// GetConfig returns the current configuration as a struct.
// Init() must be called before using this.
func GetConfig() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}

// GetString returns a string config value
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool returns a bool config value
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration returns a time.Duration config value
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// validate validates the configuration using Viper values
func validate() error {
	port := viper.GetInt("server.port")
	if port <= 0 || port > 65535 {
		return fmt.Errorf("invalid server port: %d", port)
	}

	if viper.GetString("database.path") == "" {
		fmt.Println("Warning: No database path configured")
	}

	size := viper.GetInt("processing.chunk_size")
	overlap := viper.GetInt("processing.chunk_overlap")
	if size <= 0 {
		return fmt.Errorf("invalid chunk size: %d", size)
	}
	if overlap < 0 || overlap >= size {
		return fmt.Errorf("chunk overlap %d must be in [0, chunk size %d)", overlap, size)
	}

	provider := viper.GetString("ai.provider")
	if provider != "" && provider != "anthropic" && provider != "gemini" {
		return fmt.Errorf("unknown ai provider: %s", provider)
	}

	if viper.GetString("ai.api_key") == "" {
		fmt.Println("Warning: No AI API key configured - running in offline/demo mode")
	}
	if viper.GetString("tts.api_key") == "" {
		fmt.Println("Warning: No TTS API key configured - audio will use the placeholder tone")
	}

	// Auto-correct invalid worker count
	if viper.GetInt("processing.workers") <= 0 {
		viper.Set("processing.workers", 2)
	}

	// Auto-correct invalid queue size
	if viper.GetInt("processing.max_queue_size") <= 0 {
		viper.Set("processing.max_queue_size", 100)
	}

	return nil
}

// Validate validates a Config struct (for testing)
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Processing.ChunkSize <= 0 {
		return fmt.Errorf("invalid chunk size: %d", c.Processing.ChunkSize)
	}
	if c.Processing.ChunkOverlap < 0 || c.Processing.ChunkOverlap >= c.Processing.ChunkSize {
		return fmt.Errorf("chunk overlap %d must be in [0, chunk size %d)", c.Processing.ChunkOverlap, c.Processing.ChunkSize)
	}

	if c.Processing.Workers <= 0 {
		c.Processing.Workers = 2
	}

	if c.Processing.MaxQueueSize <= 0 {
		c.Processing.MaxQueueSize = 100
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Environment defaults
	viper.SetDefault("environment", "development")

	// Server defaults
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 30*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("server.shutdown_timeout", 10*time.Second)
	viper.SetDefault("server.max_header_bytes", 1048576)

	// Database defaults
	viper.SetDefault("database.path", "./data/voxcast.db")
	viper.SetDefault("database.verbose", false)

	// Storage defaults
	viper.SetDefault("storage.upload_dir", "./uploads")
	viper.SetDefault("storage.audio_dir", "./audio")
	viper.SetDefault("storage.max_file_size", 52428800) // 50MB

	// Processing defaults
	viper.SetDefault("processing.workers", 5)
	viper.SetDefault("processing.poll_interval", 2*time.Second)
	viper.SetDefault("processing.job_timeout", 10*time.Minute)
	viper.SetDefault("processing.chunk_size", 1000)
	viper.SetDefault("processing.chunk_overlap", 200)
	viper.SetDefault("processing.max_queue_size", 100)
	viper.SetDefault("processing.ffmpeg_path", "ffmpeg")
	viper.SetDefault("processing.ffprobe_path", "ffprobe")

	// AI defaults
	viper.SetDefault("ai.provider", "anthropic")
	viper.SetDefault("ai.base_url", "https://api.anthropic.com")
	viper.SetDefault("ai.model", "claude-3-5-sonnet-latest")
	viper.SetDefault("ai.timeout", 2*time.Minute)
	viper.SetDefault("ai.max_concept_chars", 50000)

	// TTS defaults
	viper.SetDefault("tts.base_url", "https://api.elevenlabs.io")
	viper.SetDefault("tts.model", "eleven_monolingual_v1")
	viper.SetDefault("tts.default_voice", "default")
	viper.SetDefault("tts.timeout", 1*time.Minute)

	// Embedding defaults
	viper.SetDefault("embedding.provider", "local")
	viper.SetDefault("embedding.base_url", "http://localhost:11434")
	viper.SetDefault("embedding.model", "all-minilm")
	viper.SetDefault("embedding.dimensions", 384)
	viper.SetDefault("embedding.timeout", 30*time.Second)

	// Rate limiting defaults
	viper.SetDefault("rate_limiting.enabled", true)
	viper.SetDefault("rate_limiting.endpoints", map[string]int{
		"search":      60,
		"generations": 10,
		"documents":   30,
		"default":     120,
	})

	// Security defaults
	viper.SetDefault("security.enable_cors", true)
	viper.SetDefault("security.cors_origins", []string{"*"})
	viper.SetDefault("security.cors_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("security.cors_headers", []string{"Content-Type", "Authorization", "Range"})
}
