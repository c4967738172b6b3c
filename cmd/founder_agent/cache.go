package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/founder-fit/internal/cache"
	"github.com/jonathan/founder-fit/internal/db"
	"github.com/jonathan/founder-fit/internal/observability"
)

var (
	cacheConfigPath  string
	cacheDatabaseURL string
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the shared report cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Summarize the currently valid cached reports",
	RunE:  runCacheStatus,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Invalidate every cached report",
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.PersistentFlags().StringVar(&cacheConfigPath, "config", "", "Path to config.json file")
	cacheCmd.PersistentFlags().StringVar(&cacheDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

// cacheManager opens the shared database-backed cache. The in-memory
// cache is per-process, so these commands only make sense against a
// database.
func cacheManager(ctx context.Context) (*cache.Manager, func(), error) {
	cfg, err := resolveConfig(cacheConfigPath)
	if err != nil {
		return nil, nil, err
	}
	if cacheDatabaseURL != "" {
		cfg.DatabaseURL = cacheDatabaseURL
	}
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("a database URL is required (--db-url or DATABASE_URL)")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, nil, err
	}

	manager := cache.New(cache.Options{
		Store: db.NewCacheStore(database),
		TTL:   cfg.CacheTTL(),
	})
	return manager, database.Close, nil
}

func runCacheStatus(cmd *cobra.Command, _ []string) error {
	manager, closeDB, err := cacheManager(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	observability.NewPrinter(os.Stdout).PrintCacheStatus(manager.Status())
	return nil
}

func runCacheClear(cmd *cobra.Command, _ []string) error {
	manager, closeDB, err := cacheManager(cmd.Context())
	if err != nil {
		return err
	}
	defer closeDB()

	manager.InvalidateAll()
	fmt.Println("Report cache cleared")
	return nil
}
