package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/founder-fit/internal/cache"
	"github.com/jonathan/founder-fit/internal/db"
	"github.com/jonathan/founder-fit/internal/llm"
	"github.com/jonathan/founder-fit/internal/lock"
	"github.com/jonathan/founder-fit/internal/narrative"
	"github.com/jonathan/founder-fit/internal/observability"
	"github.com/jonathan/founder-fit/internal/pipeline"
	"github.com/jonathan/founder-fit/internal/types"
	"github.com/jonathan/founder-fit/internal/unlock"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the full founder fit report",
	Long: `Runs the complete generation pipeline: trait scoring -> model ranking -> insight generation -> characteristic generation -> fit/avoid analysis -> finalization.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runGenerate,
}

var (
	generateConfigPath  string
	generateAnswersPath string
	generateAPIKey      string
	generateDatabaseURL string
	generateVerbose     bool
	generateJSON        bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&generateAnswersPath, "answers", "a", "", "Path to quiz answers JSON file (required)")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "Print the report as raw JSON")
	_ = generateCmd.MarkFlagRequired("answers")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(generateConfigPath)
	if err != nil {
		return err
	}
	if generateAPIKey != "" {
		cfg.APIKey = generateAPIKey
	}
	if generateDatabaseURL != "" {
		cfg.DatabaseURL = generateDatabaseURL
	}
	if generateVerbose {
		cfg.Verbose = true
	}

	answers, err := loadAnswers(generateAnswersPath)
	if err != nil {
		return err
	}

	// Ctrl-C cancels the run; cancellation abandons the report rather
	// than delivering a partial one.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := pipeline.Options{
		Answers:      answers,
		StageTimeout: cfg.StageTimeout(),
		MinDuration:  cfg.MinDuration(),
		TotalBudget:  cfg.TotalBudget(),
		Verbose:      cfg.Verbose,
	}

	var database *db.DB
	if cfg.DatabaseURL != "" {
		database, err = db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()
		if err := database.Migrate(ctx); err != nil {
			return err
		}

		opts.Cache = cache.New(cache.Options{
			Store: db.NewCacheStore(database),
			TTL:   cfg.CacheTTL(),
		})
		opts.Lock = db.NewLock(database, lock.DefaultStaleness)
		opts.Views = db.NewViewLedger(database)
	} else {
		opts.Cache = cache.New(cache.Options{TTL: cfg.CacheTTL()})
		opts.Lock = lock.NewMemoryLock(lock.DefaultStaleness)
		opts.Views = unlock.NewMemoryTracker()
	}

	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
	} else {
		fmt.Println("No API key configured; the report will use fallback narratives")
		client = llm.Disabled()
	}
	defer client.Close() //nolint:errcheck
	opts.Generator = narrative.NewGenerator(client)

	if !generateJSON {
		opts.OnProgress = func(event types.ProgressEvent) {
			fmt.Printf("\r%-28s %3d%%", event.StageName, event.Percent)
		}
	}

	runID, recorded := recordRunStart(ctx, database, opts.Cache.Key(answers))

	result, err := pipeline.Run(ctx, opts)
	if !generateJSON {
		fmt.Println()
	}
	if err != nil {
		if recorded {
			recordRunEnd(database, runID, "failed", "")
		}
		if errors.Is(err, pipeline.ErrAlreadyRunning) {
			return fmt.Errorf("a report is already being generated for these answers")
		}
		return err
	}
	if recorded {
		recordRunEnd(database, runID, "completed", result.TopModel.ModelID)
	}

	if generateJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	observability.NewPrinter(os.Stdout).PrintGenerationResult(result)
	return nil
}

func recordRunStart(ctx context.Context, database *db.DB, reportKey string) (runID uuid.UUID, ok bool) {
	if database == nil {
		return runID, false
	}
	id, err := database.CreateRun(ctx, reportKey)
	if err != nil {
		fmt.Printf("Warning: failed to record run start: %v\n", err)
		return runID, false
	}
	return id, true
}

func recordRunEnd(database *db.DB, runID uuid.UUID, status, topModel string) {
	// Completion is recorded even when the run context was cancelled.
	if err := database.CompleteRun(context.Background(), runID, status, topModel); err != nil {
		fmt.Printf("Warning: failed to record run completion: %v\n", err)
	}
}
