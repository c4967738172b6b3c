package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"api_key": "test-key",
		"database_url": "postgres://localhost/founder_fit",
		"port": 9090,
		"stage_timeout_sec": 20,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/founder_fit", cfg.DatabaseURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 20, cfg.StageTimeoutSec)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		cfg := Defaults()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("negative timings rejected", func(t *testing.T) {
		cfg := Config{StageTimeoutSec: -1}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "stage_timeout_sec")
	})

	t.Run("out of range port rejected", func(t *testing.T) {
		cfg := Config{Port: 70000}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "port")
	})

	t.Run("negative cache ttl rejected", func(t *testing.T) {
		cfg := Config{CacheTTLHours: -5}
		assert.Error(t, cfg.Validate())
	})
}

func TestMergeWithDefaults(t *testing.T) {
	t.Run("explicit values survive", func(t *testing.T) {
		cfg := Config{APIKey: "explicit", Port: 9000, MinDurationSec: 10}
		merged := cfg.MergeWithDefaults(Defaults())

		assert.Equal(t, "explicit", merged.APIKey)
		assert.Equal(t, 9000, merged.Port)
		assert.Equal(t, 10, merged.MinDurationSec)
	})

	t.Run("zero values take defaults", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(Defaults())

		assert.Equal(t, 8080, merged.Port)
		assert.Equal(t, 15, merged.StageTimeoutSec)
		assert.Equal(t, 25, merged.MinDurationSec)
		assert.Equal(t, 24, merged.CacheTTLHours)
	})

	t.Run("original is not mutated", func(t *testing.T) {
		cfg := Config{}
		_ = cfg.MergeWithDefaults(Defaults())
		assert.Equal(t, 0, cfg.Port)
	})
}

func TestDurationHelpers(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 15*time.Second, cfg.StageTimeout())
	assert.Equal(t, 25*time.Second, cfg.MinDuration())
	assert.Equal(t, 90*time.Second, cfg.TotalBudget())
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL())
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout())
}
