// Package cmd implements the CLI application that captures snapshots and
// produces portfolio reports.
package cmd

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	kubera "github.com/the-mace/kubera-reporting"
)

// Commands lists the subcommands in help order.
// A main package registers them and Execute()s the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&showCmd{},
	&listCmd{},
	&cleanupCmd{},
	&exportCmd{},
	&queryCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", defaultConfigFile(), "Path to the YAML configuration file")

func defaultConfigFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".kubera-reporting", "config.yaml")
}

// loadConfig is the central function to read the app configuration.
func loadConfig() (*kubera.Config, error) {
	return kubera.LoadConfig(*configFile)
}

// openStore opens the snapshot store at the configured data directory.
func openStore(cfg *kubera.Config) (*kubera.SnapshotStore, error) {
	return kubera.OpenStore(cfg.DataDir)
}
