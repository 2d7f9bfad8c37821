package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List archived digest runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if cfg.ArchivePath == "" {
		return fmt.Errorf("no archive configured (archive_path is empty)")
	}

	store, err := archive.Open(cfg.ArchivePath)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := store.ListRuns(limit)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No archived runs.")
		return nil
	}

	fmt.Fprintf(w, "%-4s  %-20s  %-7s  %-7s  %s\n", "ID", "Ran at", "Topics", "Papers", "Delivered")
	for _, r := range runs {
		delivered := "no"
		if r.Delivered {
			delivered = "yes"
		}
		fmt.Fprintf(w, "%-4d  %-20s  %-7d  %-7d  %s\n",
			r.ID, r.RanAt.Format("2006-01-02 15:04"), r.TopicCount, r.RecordCount, delivered)
	}
	return nil
}
