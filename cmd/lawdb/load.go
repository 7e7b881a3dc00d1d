package main

import (
	"fmt"

	"github.com/Ansvar-Systems/japan-law-mcp/internal/ingest"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <dir>",
	Short: "Ingest Standard Law XML files from a directory",
	Long: `Load every .xml file in a directory into the corpus. Files must be
in the e-Gov Standard Law XML format, either as a bare <Law> document
or wrapped in the API envelope.

Re-loading a law upserts it: metadata is refreshed and provisions are
replaced, not duplicated.

Example:
  lawdb load ./data/laws`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	store, _, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	importer := ingest.NewImporter(store, nil)
	result, err := importer.LoadDir(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d law(s) in batch %s\n", result.Imported, result.BatchID)
	for _, e := range result.Errors {
		fmt.Printf("  skipped: %s\n", e)
	}
	return nil
}
