package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
)

// cleanupCmd holds the flags for the 'cleanup' subcommand.
type cleanupCmd struct {
	days   int
	dryRun bool
}

func (*cleanupCmd) Name() string     { return "cleanup" }
func (*cleanupCmd) Synopsis() string { return "prune stale non-milestone snapshots" }
func (*cleanupCmd) Usage() string {
	return `kubera-report cleanup [-days <n>] [-dry-run]

  Deletes snapshots older than the retention window, keeping today, yesterday,
  and every milestone date (Mondays and firsts of month) forever.
`
}

func (c *cleanupCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.days, "days", 0, "Retention window in days (defaults to the configured value)")
	f.BoolVar(&c.dryRun, "dry-run", false, "Only list what would be deleted")
}

func (c *cleanupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *cleanupCmd) run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if c.days <= 0 {
		c.days = cfg.RetentionDays
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	if c.dryRun {
		dates, err := store.ListDates()
		if err != nil {
			return err
		}
		candidates := kubera.PruneCandidates(dates, kubera.Today(), c.days)
		for _, on := range candidates {
			fmt.Printf("would delete %s\n", on)
		}
		fmt.Printf("%d of %d snapshots would be deleted\n", len(candidates), len(dates))
		return nil
	}

	deleted, err := store.Cleanup(kubera.Today(), c.days)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d snapshots.\n", deleted)
	return nil
}
