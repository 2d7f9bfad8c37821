package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/digest"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Collect new papers and print the digest without sending",
	Long: `Preview runs the same collection pipeline as run but prints the rendered
report to stdout. Nothing is emailed and nothing is archived, so it is safe
to use while tuning topics and exclusion terms.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("topics", "topics.yaml", "topics file")
	previewCmd.Flags().Int("window-days", 0, "override the retention window length in days")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if days, _ := cmd.Flags().GetInt("window-days"); days > 0 {
		cfg.Window.Days = days
	}

	topicsPath, _ := cmd.Flags().GetString("topics")
	d, window, err := collectDigest(cmd, cfg, topicsPath)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), digest.FormatReport(d, window))
	return nil
}
