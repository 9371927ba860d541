package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	appcli "expensejournal/internal/cli"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = ""

	// CommitSHA contains the SHA of the commit that this application was built
	// against. It's set via ldflags when building.
	CommitSHA = ""

	cli struct {
		Version kong.VersionFlag `help:"Show version information"`
		DataDir string           `help:"Directory holding the expenses and categories files." type:"path" placeholder:"DIR"`
		appcli.Commands
	}
)

func main() {
	appcli.LoadEnvFile()

	ctx := kong.Parse(&cli,
		kong.Vars{
			"version": buildVersion(),
		},
		kong.Name("expensejournal"),
		kong.Description("Record, summarize and export personal expenses."),
		kong.UsageOnError(),
	)

	cfg, err := appcli.LoadAndValidateConfig(cli.DataDir)
	ctx.FatalIfErrorf(err)

	logger := appcli.SetupLogger(cfg, os.Stderr)
	bg := context.Background()
	svc := appcli.OpenService(bg, cfg, logger)

	// Commands print their own outcome; only the exit status is left to set.
	if err := ctx.Run(appcli.NewRuntime(bg, svc)); err != nil {
		os.Exit(1)
	}
}

func buildVersion() string {
	if Version == "" {
		Version = "dev"
	}
	if CommitSHA == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, CommitSHA)
}
