package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
	"github.com/the-mace/kubera-reporting/emailer"
	"github.com/the-mace/kubera-reporting/insight"
	"github.com/the-mace/kubera-reporting/kuberaapi"
	"github.com/the-mace/kubera-reporting/renderer"
)

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	portfolio   string
	email       string
	saveOnly    bool
	dryRun      bool
	noAI        bool
	hideAmounts bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "fetch a snapshot and send the due portfolio reports" }
func (*reportCmd) Usage() string {
	return `kubera-report report [-portfolio <id>] [-email <addr>] [-save-only] [-dry-run] [-no-ai]

  Fetches the current portfolio snapshot, stores it, and generates one report
  per cadence due today (daily always; weekly on Mondays; monthly, quarterly
  and yearly on their first days). Reports are emailed unless -dry-run is set,
  in which case they print to the terminal. Finishes by pruning stale
  snapshots per the retention policy.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "portfolio", "", "Portfolio id to report on (defaults to the first portfolio)")
	f.StringVar(&c.email, "email", "", "Email address to send reports to (defaults to the configured one)")
	f.BoolVar(&c.saveOnly, "save-only", false, "Only save the snapshot, skip report generation")
	f.BoolVar(&c.dryRun, "dry-run", false, "Render reports to the terminal instead of sending email")
	f.BoolVar(&c.noAI, "no-ai", false, "Skip the AI-written summary")
	f.BoolVar(&c.hideAmounts, "hide-amounts", false, "Ask the AI summary to avoid specific amounts")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *reportCmd) run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if c.portfolio == "" {
		c.portfolio = cfg.Kubera.Portfolio
	}
	if c.email == "" {
		c.email = cfg.Report.Email
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	client := kuberaapi.New(cfg.Kubera.APIKey, cfg.Kubera.APISecret)
	snapshot, err := client.FetchSnapshot(ctx, c.portfolio)
	if err != nil {
		return err
	}
	if err := store.Save(snapshot); err != nil {
		return err
	}
	on, err := snapshot.Date()
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Saved snapshot for %s (net worth %s)\n", on, snapshot.NetWorth)

	if c.saveOnly {
		return nil
	}

	for _, t := range kubera.MilestoneTypes(on) {
		if err := c.sendOne(ctx, cfg, store, snapshot, t); err != nil {
			return fmt.Errorf("%s report: %w", t, err)
		}
	}

	deleted, err := store.Cleanup(kubera.Today(), cfg.RetentionDays)
	if err != nil {
		return fmt.Errorf("cleanup: %w", err)
	}
	if deleted > 0 {
		fmt.Fprintf(os.Stderr, "Pruned %d stale snapshots\n", deleted)
	}
	return nil
}

func (c *reportCmd) sendOne(ctx context.Context, cfg *kubera.Config, store *kubera.SnapshotStore, snapshot *kubera.PortfolioSnapshot, t kubera.ReportType) error {
	data, err := kubera.BuildReport(store, snapshot, t)
	if err != nil {
		return err
	}

	allocation := kubera.Allocation(data.CurrentUnaggregated)
	md := renderer.ReportMarkdown(data, allocation, t)

	if summary := c.summarize(ctx, cfg, data, t); summary != "" {
		md += "\n## Insights\n\n" + summary + "\n"
	}

	if c.dryRun {
		printMarkdown(md)
		fmt.Fprintf(os.Stderr, "%s report NOT sent (dry-run)\n", t)
		return nil
	}
	if c.email == "" {
		return fmt.Errorf("no report email configured: set report.email or KUBERA_REPORT_EMAIL, or use -dry-run")
	}

	html, err := markdownHTML(md)
	if err != nil {
		return err
	}

	on, _ := snapshot.Date()
	subject := fmt.Sprintf("Your portfolio %s for %s", t.Subject(), on.Format("Jan 02"))

	sender := emailer.New(c.email)
	sender.From = cfg.Report.From
	if err := sender.SendHTML(subject, html); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "%s report sent to %s\n", t, c.email)
	return nil
}

// summarize asks the AI for a narrative. Never fatal: without previous data,
// without a model, or on any error, the report ships without insights.
func (c *reportCmd) summarize(ctx context.Context, cfg *kubera.Config, data *kubera.ReportData, t kubera.ReportType) string {
	if c.noAI || data.Previous == nil {
		return ""
	}
	ai, err := insight.New(ctx, cfg.LLM.Model)
	if err != nil {
		log.Printf("skip-ai-summary err=%q", err)
		return ""
	}
	summary, err := ai.Summarize(ctx, data, t, c.hideAmounts || cfg.Report.HideAmounts)
	if err != nil {
		log.Printf("skip-ai-summary err=%q", err)
		return ""
	}
	return summary
}
