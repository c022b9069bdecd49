// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/docwiki/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion runs",
	Long: `History lists recent conversions from the local journal, newest first,
with the failing stage for runs that did not complete.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dir, err := configDir()
		if err != nil {
			return err
		}
		store, err := history.NewStore(dir)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No conversions recorded.")
			return nil
		}
		for _, e := range entries {
			status := "ok"
			if !e.Succeeded {
				status = "FAILED"
				if e.FailureStage != "" {
					status = "FAILED(" + e.FailureStage + ")"
				}
			}
			fmt.Fprintf(out, "%s  %-18s %s -> %s\n",
				e.RecordedAt.Local().Format(time.DateTime), status, e.SourcePath, e.OutputPath)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")
	rootCmd.AddCommand(historyCmd)
}
