package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/founder-fit/internal/config"
	"github.com/jonathan/founder-fit/internal/types"
)

var answerValidator = validator.New()

// loadAnswers reads and validates a quiz answers JSON file.
func loadAnswers(path string) (*types.QuizAnswers, error) {
	if path == "" {
		return nil, fmt.Errorf("answers file is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file %s: %w", path, err)
	}

	var answers types.QuizAnswers
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse answers JSON: %w", err)
	}

	if err := answerValidator.Struct(&answers); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return nil, fmt.Errorf("invalid answer %s: failed %s check", fe.Field(), fe.Tag())
		}
		return nil, fmt.Errorf("invalid answers: %w", err)
	}

	return &answers, nil
}

// resolveConfig loads the optional config file and applies defaults.
// Flag and environment overrides happen in the individual commands.
func resolveConfig(configPath string) (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	merged := cfg.MergeWithDefaults(config.Defaults())
	if merged.APIKey == "" {
		merged.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if merged.DatabaseURL == "" {
		merged.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	return merged, nil
}
