package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAnswersFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "answers.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAnswers_Valid(t *testing.T) {
	path := writeAnswersFile(t, `{
		"risk_comfort_level": 4,
		"weekly_time_commitment": 20,
		"familiar_tools": ["canva", "notion"]
	}`)

	answers, err := loadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, 4, answers.RiskComfortLevel)
	assert.Equal(t, 20, answers.WeeklyTimeCommitment)
	assert.Len(t, answers.FamiliarTools, 2)
}

func TestLoadAnswers_OutOfRange(t *testing.T) {
	path := writeAnswersFile(t, `{"risk_comfort_level": 6}`)

	_, err := loadAnswers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RiskComfortLevel")
}

func TestLoadAnswers_MalformedJSON(t *testing.T) {
	path := writeAnswersFile(t, `{ nope`)

	_, err := loadAnswers(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse answers JSON")
}

func TestLoadAnswers_MissingFile(t *testing.T) {
	_, err := loadAnswers("/nonexistent/answers.json")
	assert.Error(t, err)
}

func TestResolveConfig_DefaultsApplied(t *testing.T) {
	cfg, err := resolveConfig("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 25, cfg.MinDurationSec)
}

func TestResolveConfig_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9999, "min_duration_sec": 5}`), 0644))

	cfg, err := resolveConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 5, cfg.MinDurationSec)
	assert.Equal(t, 15, cfg.StageTimeoutSec, "unset fields still take defaults")
}
