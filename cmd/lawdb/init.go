package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the corpus database and schema",
	Long: `Create the corpus database file and its schema.

Opening the store is idempotent: running init against an existing
database verifies the schema and leaves the data untouched.

Example:
  lawdb init
  LAWDB_PATH=/var/lib/lawdb/laws.db lawdb init`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	fmt.Printf("Corpus database ready at %s\n", cfg.DBPath)
	return nil
}
