package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"jobfeed-engine/internal/config"
	"jobfeed-engine/internal/store"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Job-market data collection engine",
	Long:  "Collects job postings from public job-board APIs and the monthly\nHacker News hiring thread, standardizes them, and stores raw and\ntransformed artifacts in a local object store.",
}

var flagDataDir string

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "engine data directory (default $JOBFEED_DATA_DIR or .)")
	rootCmd.AddCommand(runCmd, collectCmd, transformCmd, serveCmd, versionCmd)
}

// bootstrap resolves the data dir, loads config, and opens the object store.
func bootstrap() (config.Config, string, *store.SQLiteStore, error) {
	config.LoadDotEnv()

	dataDir := flagDataDir
	if dataDir == "" {
		dataDir = os.Getenv("JOBFEED_DATA_DIR")
	}
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return config.Config{}, "", nil, err
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("config bootstrap failed: %w", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		return config.Config{}, "", nil, fmt.Errorf("config load failed (%s): %w", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, "", nil, err
	}
	if cfg.App.DataDir == "" {
		cfg.App.DataDir = dataDir
	}

	st, err := store.OpenSQLite(filepath.Join(dataDir, "jobfeed.db"))
	if err != nil {
		return config.Config{}, "", nil, err
	}
	return cfg, userCfgPath, st, nil
}

// acquireRunLock stops two invocations from interleaving a run. The pipeline
// has no cross-run locking of its own, so the process boundary is the lock.
func acquireRunLock(dataDir string) (*flock.Flock, error) {
	lock := flock.New(filepath.Join(dataDir, "engine.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("another engine run is in progress (lock %s)", lock.Path())
	}
	return lock, nil
}

func releaseRunLock(lock *flock.Flock) {
	if err := lock.Unlock(); err != nil {
		log.Printf("[engine] releasing run lock: %v", err)
	}
}
