package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
	"github.com/the-mace/kubera-reporting/renderer"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	date   string
	period string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a stored snapshot as a report" }
func (*showCmd) Usage() string {
	return `kubera-report show [-d <date>] [-p <period>]

  Displays the report for a stored snapshot on the terminal, comparing against
  the baseline for the given period (default daily). Defaults to the most
  recent snapshot.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to show (defaults to the most recent)")
	f.StringVar(&c.period, "p", kubera.Daily.String(), "Comparison period (day, week, month, quarter, year)")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *showCmd) run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	t, err := kubera.ParseReportType(c.period)
	if err != nil {
		return err
	}

	snapshot, err := c.load(store)
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("no snapshot found; run 'kubera-report report' first")
	}

	data, err := kubera.BuildReport(store, snapshot, t)
	if err != nil {
		return err
	}
	allocation := kubera.Allocation(data.CurrentUnaggregated)
	printMarkdown(renderer.ReportMarkdown(data, allocation, t))
	return nil
}

func (c *showCmd) load(store *kubera.SnapshotStore) (*kubera.PortfolioSnapshot, error) {
	if c.date == "" {
		return store.Latest()
	}
	on, err := kubera.ParseDate(c.date)
	if err != nil {
		return nil, err
	}
	return store.Load(on)
}
