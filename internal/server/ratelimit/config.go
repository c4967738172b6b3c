package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one endpoint.
type EndpointConfig struct {
	Path   string        // Endpoint path pattern (supports prefix matching)
	Method string        // HTTP method
	Limit  int           // Maximum requests per window; 0 means unlimited
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// DefaultRateConfig returns the built-in configuration. Generation
// endpoints get the tightest limits since each run holds an LLM budget.
func DefaultRateConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    120,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/generate", Method: "POST", Limit: 6, Window: time.Minute, Burst: 2},
			{Path: "/generate/stream", Method: "POST", Limit: 6, Window: time.Minute, Burst: 2},
			{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 20},
			{Path: "/rank", Method: "POST", Limit: 60, Window: time.Minute, Burst: 20},
			{Path: "/cache/", Method: "POST", Limit: 10, Window: time.Minute, Burst: 5},
		},
	}
}

// MatchEndpoint matches a request path and method to an endpoint
// configuration. Paths ending with "/" match by prefix.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited.
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	for i := range configs {
		config := &configs[i]
		if config.Path == path && config.Method == method {
			return config
		}
	}

	for i := range configs {
		config := &configs[i]
		if config.Method == method && strings.HasSuffix(config.Path, "/") &&
			strings.HasPrefix(path, config.Path) {
			return config
		}
	}

	return nil
}
