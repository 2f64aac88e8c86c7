package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
)

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	verbose bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list stored snapshot dates" }
func (*listCmd) Usage() string {
	return `kubera-report list [-v]

  Lists the dates with a stored snapshot, most recent first, marking milestone
  dates that the retention policy keeps forever. With -v, also loads each
  snapshot and prints its net worth.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.verbose, "v", false, "Also print each snapshot's net worth")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *listCmd) run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	dates, err := store.ListDates()
	if err != nil {
		return err
	}
	if len(dates) == 0 {
		fmt.Println("No snapshots stored.")
		return nil
	}

	for _, on := range dates {
		line := on.String()
		if marks := milestoneMarks(on); marks != "" {
			line += "  (" + marks + ")"
		}
		if c.verbose {
			snapshot, err := store.Load(on)
			if err != nil {
				return err
			}
			line += "  net worth " + snapshot.NetWorth.String()
		}
		fmt.Println(line)
	}
	fmt.Printf("%d snapshots in %s\n", len(dates), store.Dir())
	return nil
}

// milestoneMarks names the non-daily cadences a date triggers, e.g. "weekly, monthly".
func milestoneMarks(on kubera.Date) string {
	var marks []string
	for _, t := range kubera.MilestoneTypes(on) {
		if t != kubera.Daily {
			marks = append(marks, t.String())
		}
	}
	return strings.Join(marks, ", ")
}
