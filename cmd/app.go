// Package cmd implements the CLI application to trade on paper.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/rs/zerolog"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/config"
	"github.com/etnz/papertrade/renderer"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&tuiCmd{}, "")
	c.Register(&catalogCmd{}, "")

	c.Register(&sessionCmd{view: renderer.MarketView}, "session")
	c.Register(&sessionCmd{view: renderer.PortfolioView}, "session")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var catalogFile = flag.String("catalog-file", "", "Path to a JSON instrument catalog (overrides PAPERTRADE_CATALOG_FILE)")
var logLevel = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides PAPERTRADE_LOG_LEVEL)")

// LoadConfig reads the configuration from the environment and applies the global flags.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *catalogFile != "" {
		cfg.CatalogFile = *catalogFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewLedger creates a fresh ledger on the configured catalog.
func NewLedger(cfg *config.Config, log zerolog.Logger) (*papertrade.Ledger, *papertrade.Catalog, error) {
	catalog, err := cfg.Catalog()
	if err != nil {
		return nil, nil, err
	}
	ledger, err := papertrade.NewLedger(catalog, cfg.Cash(), papertrade.WithLogger(log))
	if err != nil {
		return nil, nil, err
	}
	log.Debug().Int("instruments", catalog.Len()).Stringer("cash", cfg.Cash()).Msg("session started")
	return ledger, catalog, nil
}
