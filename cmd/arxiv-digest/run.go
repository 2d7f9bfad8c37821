package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/arxiv-digest/internal/archive"
	"github.com/pdiddy/arxiv-digest/internal/digest"
	"github.com/pdiddy/arxiv-digest/internal/enrich"
	"github.com/pdiddy/arxiv-digest/internal/feed"
	"github.com/pdiddy/arxiv-digest/internal/mail"
	"github.com/pdiddy/arxiv-digest/internal/topics"
	"github.com/pdiddy/arxiv-digest/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Collect new papers and deliver the digest by email",
	Long: `Run executes one full digest cycle: every topic's keywords are queried
against arXiv, results are filtered to the retention window, deduplicated
across topics, stripped of excluded terms, normalized, optionally summarized,
and the assembled report is emailed to the configured recipients.

An empty digest is a normal outcome: nothing is sent and the run still
succeeds.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().String("topics", "topics.yaml", "topics file")
	runCmd.Flags().Int("window-days", 0, "override the retention window length in days")

	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	if days, _ := cmd.Flags().GetInt("window-days"); days > 0 {
		cfg.Window.Days = days
	}

	// Delivery credentials are required up front: failing after an hour of
	// rate-limited fetching would waste the whole run.
	if cfg.Mail.From == "" || cfg.Mail.Password == "" || len(mail.Recipients(cfg.Mail.Recipients)) == 0 {
		return fmt.Errorf("mail configuration incomplete: from, password, and recipients are required")
	}

	topicsPath, _ := cmd.Flags().GetString("topics")
	d, window, err := collectDigest(cmd, cfg, topicsPath)
	if err != nil {
		return err
	}

	delivered := false
	if d.IsEmpty() {
		fmt.Fprintln(cmd.OutOrStdout(), "No new papers; nothing to send.")
	} else {
		report := digest.FormatReport(d, window)
		subject := fmt.Sprintf("%s – arXiv Digest", time.Now().Format("2006-01-02"))
		if err := mail.Send(cfg.Mail, subject, report); err != nil {
			return err
		}
		delivered = true
		fmt.Fprintf(cmd.OutOrStdout(), "Digest sent: %d paper(s) across %d topic(s).\n",
			d.TotalRecords(), len(d.Sections))
	}

	archiveRun(cfg.ArchivePath, d, window, delivered)
	return nil
}

// collectDigest wires the pipeline from configuration and runs it once.
// Shared by run and preview.
func collectDigest(cmd *cobra.Command, cfg types.DigestConfig, topicsPath string) (types.Digest, digest.Window, error) {
	topicList, err := topics.Load(topicsPath)
	if err != nil {
		return types.Digest{}, digest.Window{}, err
	}

	var enricher digest.Enricher = enrich.Noop{}
	if cfg.Enrich.Enabled {
		if cfg.Enrich.APIKey == "" {
			return types.Digest{}, digest.Window{}, fmt.Errorf("enrichment enabled but no OpenAI API key configured")
		}
		enricher = enrich.NewOpenAI(cfg.Enrich)
	}

	collector := &digest.Collector{
		Source:   feed.NewClient(cfg.Feed),
		Enricher: enricher,
		Cfg:      cfg,
	}
	return collector.Collect(cmd.Context(), topicList, cmd.ErrOrStderr())
}

// archiveRun records the completed run. Archive problems are reported but
// never fail a run that already collected or delivered its digest.
func archiveRun(path string, d types.Digest, window digest.Window, delivered bool) {
	if path == "" {
		return
	}
	store, err := archive.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening archive: %v\n", err)
		return
	}
	defer store.Close()

	run := archive.Run{
		RanAt:       time.Now(),
		WindowStart: window.Start,
		WindowEnd:   window.End,
		TopicCount:  len(d.Sections),
		RecordCount: d.TotalRecords(),
		Delivered:   delivered,
	}
	if err := store.RecordRun(run, d.Sections); err != nil {
		fmt.Fprintf(os.Stderr, "warning: archiving run: %v\n", err)
	}
}
