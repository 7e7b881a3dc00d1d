// Package main provides the lawdb CLI entry point.
//
// lawdb builds and inspects the legislation corpus that japan-law-mcp
// serves: it initializes the SQLite database, imports laws from the
// e-Gov API, loads Standard Law XML files from disk, and reports
// corpus statistics.
package main

import (
	"fmt"
	"os"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/config"
	"github.com/Ansvar-Systems/japan-law-mcp/internal/lawstore"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

// configPath is the --config flag, shared by every subcommand.
var configPath string

func main() {
	// Best-effort .env load so LAWDB_* overrides work without exporting.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lawdb",
	Short: "Manage the Japanese legislation corpus",
	Long: `lawdb manages the corpus database served by japan-law-mcp.

Core commands:
  - init: create the database and schema
  - import: fetch laws from the e-Gov API by law ID
  - load: ingest Standard Law XML files from a directory
  - stats: report corpus totals

Configuration is read from japan-law-mcp.yaml (or --config), with
LAWDB_PATH, LAWDB_EGOV_URL, and LAWDB_EGOV_RATE environment overrides.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the YAML config file")
	rootCmd.Version = Version
}

// loadConfig resolves the effective configuration for a subcommand.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// openStore opens the corpus database, creating it if needed.
func openStore() (*lawstore.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, err
	}
	store, err := lawstore.Open(lawstore.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("opening corpus store: %w", err)
	}
	return store, cfg, nil
}
