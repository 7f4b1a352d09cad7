package config

import "time"

// Config represents the complete application configuration
type Config struct {
	Server       ServerConfig     `mapstructure:"server"`
	Database     DatabaseConfig   `mapstructure:"database"`
	Storage      StorageConfig    `mapstructure:"storage"`
	Processing   ProcessingConfig `mapstructure:"processing"`
	AI           AIConfig         `mapstructure:"ai"`
	TTS          TTSConfig        `mapstructure:"tts"`
	Embedding    EmbeddingConfig  `mapstructure:"embedding"`
	RateLimiting RateLimitConfig  `mapstructure:"rate_limiting"`
	Security     SecurityConfig   `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxHeaderBytes  int           `mapstructure:"max_header_bytes"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	Verbose bool   `mapstructure:"verbose"`
}

// StorageConfig contains file storage settings
type StorageConfig struct {
	UploadDir   string `mapstructure:"upload_dir"`
	AudioDir    string `mapstructure:"audio_dir"`
	MaxFileSize int64  `mapstructure:"max_file_size"`
}

// ProcessingConfig contains pipeline and worker settings.
// Workers doubles as the maximum number of concurrently running
// generations: each worker runs one job's stages sequentially.
type ProcessingConfig struct {
	Workers      int           `mapstructure:"workers"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	JobTimeout   time.Duration `mapstructure:"job_timeout"`
	ChunkSize    int           `mapstructure:"chunk_size"`
	ChunkOverlap int           `mapstructure:"chunk_overlap"`
	MaxQueueSize int           `mapstructure:"max_queue_size"`
	FFmpegPath   string        `mapstructure:"ffmpeg_path"`
	FFprobePath  string        `mapstructure:"ffprobe_path"`
}

// AIConfig contains language-generation capability settings.
// An empty APIKey leaves the pipeline in offline/demo mode.
type AIConfig struct {
	Provider        string        `mapstructure:"provider"` // "anthropic" or "gemini"
	APIKey          string        `mapstructure:"api_key"`
	BaseURL         string        `mapstructure:"base_url"`
	Model           string        `mapstructure:"model"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxConceptChars int           `mapstructure:"max_concept_chars"`
}

// TTSConfig contains text-to-speech capability settings.
// An empty APIKey makes the synthesizer emit the placeholder tone.
type TTSConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	Model        string        `mapstructure:"model"`
	DefaultVoice string        `mapstructure:"default_voice"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// EmbeddingConfig contains embedding capability settings
type EmbeddingConfig struct {
	Provider   string        `mapstructure:"provider"` // "local" or "ollama"
	BaseURL    string        `mapstructure:"base_url"`
	Model      string        `mapstructure:"model"`
	Dimensions int           `mapstructure:"dimensions"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Enabled   bool           `mapstructure:"enabled"`
	Endpoints map[string]int `mapstructure:"endpoints"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	EnableCORS  bool     `mapstructure:"enable_cors"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	CORSMethods []string `mapstructure:"cors_methods"`
	CORSHeaders []string `mapstructure:"cors_headers"`
}
