package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Report corpus totals",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	laws, provisions, err := store.Counts(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Database:   %s\n", cfg.DBPath)
	fmt.Printf("Laws:       %d\n", laws)
	fmt.Printf("Provisions: %d\n", provisions)

	inventory, err := store.ListLaws(cmd.Context(), "")
	if err != nil {
		return err
	}
	for _, l := range inventory {
		fmt.Printf("  %-14s %-22s %s\n", l.ID, l.Kind, l.Title)
	}
	return nil
}
