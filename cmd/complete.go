package cmd

import (
	"flag"
	"os"
	"strings"

	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/config"
)

// Complete answers a shell completion request for the program name, if the
// process was started by the shell for completion. It is a no-op otherwise.
//
// Install it with: COMP_INSTALL=1 papertrade
func Complete(name string) {
	completion(symbols).Complete(name)
}

// symbols returns the symbols of the catalog named on the command line being
// completed, or of the configured one, falling back on the default one.
//
// It is only called while completing, flag.Parse has not run yet.
func symbols() []string {
	cfg, err := config.Load()
	if err != nil {
		return papertrade.DefaultCatalog("INR").Symbols()
	}
	if file := catalogFileArg(os.Getenv("COMP_LINE")); file != "" {
		cfg.CatalogFile = file
	}
	c, err := cfg.Catalog()
	if err != nil {
		return papertrade.DefaultCatalog(cfg.Currency).Symbols()
	}
	return c.Symbols()
}

// catalogFileArg returns the value of the -catalog-file flag in a command line.
func catalogFileArg(line string) string {
	fields := strings.Fields(line)
	for i, f := range fields {
		name, value, hasValue := strings.Cut(strings.TrimLeft(f, "-"), "=")
		if !strings.HasPrefix(f, "-") || name != "catalog-file" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(fields) {
			return fields[i+1]
		}
	}
	return ""
}

// completion describes the command line of the application.
// symbols is only called when trade arguments are being completed.
func completion(symbols func() []string) *complete.Command {
	trades := complete.PredictFunc(func(prefix string) []string {
		return append([]string{string(papertrade.SideBuy), string(papertrade.SideSell)}, symbols()...)
	})
	session := func() *complete.Command {
		return &complete.Command{
			Flags: map[string]complete.Predictor{"raw": predict.Nothing},
			Args:  trades,
		}
	}
	globals := map[string]complete.Predictor{}
	flag.VisitAll(func(f *flag.Flag) {
		globals[f.Name] = predict.Something
	})
	globals["catalog-file"] = predict.Files("*.json")
	globals["log-level"] = predict.Set{"debug", "info", "warn", "error"}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"tui": {
				Flags: map[string]complete.Predictor{"view": predict.Set{"market", "portfolio"}},
			},
			"market":    session(),
			"portfolio": session(),
			"catalog":   {},
			"help":      {},
			"commands":  {},
			"flags":     {},
		},
		Flags: globals,
	}
}
