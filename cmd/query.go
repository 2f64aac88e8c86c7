package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
	"github.com/the-mace/kubera-reporting/insight"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	model string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "ask the AI a question about the portfolio" }
func (*queryCmd) Usage() string {
	return `kubera-report query [-model <name>] <question>

  Answers a free-form question about the portfolio, grounded on the most
  recent stored snapshot and its daily deltas.
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Model to use (defaults to the configured one)")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing question")
		return subcommands.ExitUsageError
	}
	if err := c.run(ctx, strings.Join(f.Args(), " ")); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *queryCmd) run(ctx context.Context, question string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}

	snapshot, err := store.Latest()
	if err != nil {
		return err
	}
	if snapshot == nil {
		return fmt.Errorf("no snapshot found; run 'kubera-report report' first")
	}

	// Daily deltas give the model short-term context when available.
	data, err := kubera.BuildReport(store, snapshot, kubera.Daily)
	if err != nil {
		return err
	}

	if c.model == "" {
		c.model = cfg.LLM.Model
	}
	ai, err := insight.New(ctx, c.model)
	if err != nil {
		return err
	}
	answer, err := ai.Query(ctx, snapshot, data, question)
	if err != nil {
		return err
	}
	printMarkdown(answer)
	return nil
}
