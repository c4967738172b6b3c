// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information

	// Server
	Port              int     `json:"port,omitempty"`                // HTTP listen port
	RateLimitPerMin   float64 `json:"rate_limit_per_min,omitempty"`  // Requests per minute per client
	RateLimitBurst    int     `json:"rate_limit_burst,omitempty"`    // Burst size per client
	ShutdownTimeoutMS int     `json:"shutdown_timeout_ms,omitempty"` // Graceful shutdown window

	// Generation timing, in seconds
	StageTimeoutSec int `json:"stage_timeout_sec,omitempty"` // Per external call
	MinDurationSec  int `json:"min_duration_sec,omitempty"`  // Completion floor
	TotalBudgetSec  int `json:"total_budget_sec,omitempty"`  // Time-based progress budget

	// Cache
	CacheTTLHours int `json:"cache_ttl_hours,omitempty"` // Report validity window
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:              8080,
		RateLimitPerMin:   30,
		RateLimitBurst:    10,
		ShutdownTimeoutMS: 5000,
		StageTimeoutSec:   15,
		MinDurationSec:    25,
		TotalBudgetSec:    90,
		CacheTTLHours:     24,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.RateLimitPerMin < 0 {
		return fmt.Errorf("config error: 'rate_limit_per_min' must be non-negative")
	}
	if c.RateLimitBurst < 0 {
		return fmt.Errorf("config error: 'rate_limit_burst' must be non-negative")
	}
	if c.StageTimeoutSec < 0 {
		return fmt.Errorf("config error: 'stage_timeout_sec' must be non-negative")
	}
	if c.MinDurationSec < 0 {
		return fmt.Errorf("config error: 'min_duration_sec' must be non-negative")
	}
	if c.TotalBudgetSec < 0 {
		return fmt.Errorf("config error: 'total_budget_sec' must be non-negative")
	}
	if c.CacheTTLHours < 0 {
		return fmt.Errorf("config error: 'cache_ttl_hours' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-value fields filled
// from defaults. This is used to apply config file values as defaults
// for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.RateLimitPerMin == 0 {
		result.RateLimitPerMin = defaults.RateLimitPerMin
	}
	if result.RateLimitBurst == 0 {
		result.RateLimitBurst = defaults.RateLimitBurst
	}
	if result.ShutdownTimeoutMS == 0 {
		result.ShutdownTimeoutMS = defaults.ShutdownTimeoutMS
	}
	if result.StageTimeoutSec == 0 {
		result.StageTimeoutSec = defaults.StageTimeoutSec
	}
	if result.MinDurationSec == 0 {
		result.MinDurationSec = defaults.MinDurationSec
	}
	if result.TotalBudgetSec == 0 {
		result.TotalBudgetSec = defaults.TotalBudgetSec
	}
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}

	// Bool fields: true wins (cannot distinguish false from unset)
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}

// StageTimeout returns the per-call timeout as a duration.
func (c *Config) StageTimeout() time.Duration {
	return time.Duration(c.StageTimeoutSec) * time.Second
}

// MinDuration returns the completion floor as a duration.
func (c *Config) MinDuration() time.Duration {
	return time.Duration(c.MinDurationSec) * time.Second
}

// TotalBudget returns the progress time budget as a duration.
func (c *Config) TotalBudget() time.Duration {
	return time.Duration(c.TotalBudgetSec) * time.Second
}

// CacheTTL returns the report validity window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLHours) * time.Hour
}

// ShutdownTimeout returns the graceful shutdown window as a duration.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}
