package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/generate", Method: "POST", Limit: 2, Window: time.Minute, Burst: 2},
			{Path: "/cache/", Method: "POST", Limit: 3, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("1.2.3.4", "/generate", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 2, info.Limit)

	allowed, _ = l.Allow("1.2.3.4", "/generate", "POST")
	assert.True(t, allowed)
}

func TestLimiter_BlocksPastBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/generate", "POST")
	l.Allow("1.2.3.4", "/generate", "POST")

	allowed, info := l.Allow("1.2.3.4", "/generate", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	l.Allow("1.2.3.4", "/generate", "POST")
	l.Allow("1.2.3.4", "/generate", "POST")

	allowed, _ := l.Allow("5.6.7.8", "/generate", "POST")
	assert.True(t, allowed, "another client gets its own bucket")
}

func TestLimiter_PrefixMatch(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/cache/clear", "POST")
		require.True(t, allowed, "request %d", i)
	}
	allowed, _ := l.Allow("1.2.3.4", "/cache/clear", "POST")
	assert.False(t, allowed)
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 500; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/generate", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_ConcurrentClients(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(id int) {
			defer func() { done <- struct{}{} }()
			client := fmt.Sprintf("10.0.0.%d", id)
			for j := 0; j < 50; j++ {
				l.Allow(client, "/score", "POST")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().Endpoints

	assert.NotNil(t, MatchEndpoint("/generate", "POST", configs))
	assert.Nil(t, MatchEndpoint("/generate", "GET", configs))
	assert.NotNil(t, MatchEndpoint("/cache/status", "POST", configs))
	assert.Nil(t, MatchEndpoint("/score", "POST", configs))

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)
}
