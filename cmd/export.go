package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	date   string
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export a stored snapshot as JSON" }
func (*exportCmd) Usage() string {
	return `kubera-report export [-d <date>] [-o <file>]

  Writes the stored snapshot for a date (default: most recent) as indented
  JSON to stdout or to a file.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date of the snapshot to export (defaults to the most recent)")
	f.StringVar(&c.output, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := c.run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *exportCmd) run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	var snapshot *kubera.PortfolioSnapshot
	if c.date == "" {
		snapshot, err = store.Latest()
	} else {
		var on kubera.Date
		if on, err = kubera.ParseDate(c.date); err == nil {
			snapshot, err = store.Load(on)
		}
	}
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("no snapshot found")
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if c.output == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(c.output, data, 0600)
}
