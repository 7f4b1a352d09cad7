package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	setDefaults()

	assert.Equal(t, 8080, GetInt("server.port"))
	assert.Equal(t, 1000, GetInt("processing.chunk_size"))
	assert.Equal(t, 200, GetInt("processing.chunk_overlap"))
	assert.Equal(t, 5, GetInt("processing.workers"))
	assert.Equal(t, 384, GetInt("embedding.dimensions"))
	assert.Equal(t, 10*time.Minute, GetDuration("processing.job_timeout"))
	assert.Equal(t, "local", GetString("embedding.provider"))
	assert.True(t, GetBool("rate_limiting.enabled"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		wantErr string
	}{
		{
			name:  "defaults are valid",
			setup: func() {},
		},
		{
			name: "invalid port",
			setup: func() {
				viper.Set("server.port", -1)
			},
			wantErr: "invalid server port",
		},
		{
			name: "overlap not smaller than size",
			setup: func() {
				viper.Set("processing.chunk_size", 100)
				viper.Set("processing.chunk_overlap", 100)
			},
			wantErr: "chunk overlap",
		},
		{
			name: "unknown ai provider",
			setup: func() {
				viper.Set("ai.provider", "skynet")
			},
			wantErr: "unknown ai provider",
		},
		{
			name: "worker count auto-corrected",
			setup: func() {
				viper.Set("processing.workers", 0)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			defer viper.Reset()
			setDefaults()
			tt.setup()

			err := validate()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Greater(t, GetInt("processing.workers"), 0)
		})
	}
}

func TestConfigStructValidate(t *testing.T) {
	cfg := &Config{
		Server:     ServerConfig{Port: 8080},
		Processing: ProcessingConfig{ChunkSize: 1000, ChunkOverlap: 200},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 2, cfg.Processing.Workers)
	assert.Equal(t, 100, cfg.Processing.MaxQueueSize)

	bad := &Config{
		Server:     ServerConfig{Port: 8080},
		Processing: ProcessingConfig{ChunkSize: 100, ChunkOverlap: 150},
	}
	require.Error(t, bad.Validate())
}
