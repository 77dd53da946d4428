package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/etnz/papertrade"
)

type catalogCmd struct{}

func (*catalogCmd) Name() string     { return "catalog" }
func (*catalogCmd) Synopsis() string { return "print the tradeable instruments as JSON" }
func (*catalogCmd) Usage() string {
	return `papertrade catalog

  Prints the instrument catalog in the JSON format read by -catalog-file.

Usage Examples:
# Start from the built-in catalog to write your own.
$ papertrade catalog > nse.json
$ papertrade -catalog-file nse.json tui
`
}

func (*catalogCmd) SetFlags(f *flag.FlagSet) {}

func (*catalogCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := papertrade.EncodeCatalog(os.Stdout, catalog); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalog: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
