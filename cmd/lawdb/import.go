package main

import (
	"fmt"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/ingest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <law-id>...",
	Short: "Fetch laws from the e-Gov API",
	Long: `Fetch one or more laws from the e-Gov law API and load them into
the corpus. Law IDs are e-Gov identifiers, e.g. 415AC0000000057 for the
Act on the Protection of Personal Information.

Requests are rate-limited (LAWDB_EGOV_RATE, default 2 req/s). A law
that fails to fetch or parse is reported and skipped; the rest of the
batch still imports.

Example:
  lawdb import 415AC0000000057
  lawdb import 415AC0000000057 415CO0000000507`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	opts := []ingest.ClientOption{ingest.WithRateLimit(cfg.EGovRateLimit)}
	if cfg.EGovBaseURL != "" {
		opts = append(opts, ingest.WithBaseURL(cfg.EGovBaseURL))
	}
	importer := ingest.NewImporter(store, ingest.NewClient(opts...))

	result, err := importer.ImportLaws(cmd.Context(), args)
	if err != nil {
		return err
	}

	fmt.Printf("Imported %d law(s) in batch %s\n", result.Imported, result.BatchID)
	for _, e := range result.Errors {
		fmt.Printf("  skipped: %s\n", e)
	}
	return nil
}
