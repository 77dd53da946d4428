package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
)

// action is a single scripted trade.
type action struct {
	side   papertrade.Side
	symbol string
}

// parseActions reads "buy SYMBOL" and "sell SYMBOL" pairs.
func parseActions(args []string) ([]action, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("expected buy/sell SYMBOL pairs, got %d arguments", len(args))
	}
	actions := make([]action, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		side := papertrade.Side(strings.ToLower(args[i]))
		if side != papertrade.SideBuy && side != papertrade.SideSell {
			return nil, fmt.Errorf("unknown action %q, expected buy or sell", args[i])
		}
		actions = append(actions, action{side: side, symbol: strings.ToUpper(args[i+1])})
	}
	return actions, nil
}

// replay applies actions to l in order and renders their notifications as markdown.
// It reports whether every trade succeeded.
func replay(l *papertrade.Ledger, actions []action) (string, bool) {
	var b strings.Builder
	ok := true
	for _, a := range actions {
		var (
			trade papertrade.Trade
			err   error
		)
		switch a.side {
		case papertrade.SideBuy:
			trade, err = l.Buy(a.symbol)
		case papertrade.SideSell:
			trade, err = l.Sell(a.symbol)
		}
		if err != nil {
			ok = false
		}
		b.WriteString(renderer.RenderNotification(renderer.Notify(trade, err)))
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String(), ok
}

// sessionCmd replays trades on a fresh ledger and prints one view of the result.
type sessionCmd struct {
	view renderer.View
	raw  bool
}

func (c *sessionCmd) Name() string { return c.view.String() }
func (c *sessionCmd) Synopsis() string {
	return fmt.Sprintf("replay trades on a fresh ledger and print the %s", c.view)
}
func (c *sessionCmd) Usage() string {
	return fmt.Sprintf(`papertrade %[1]s [-raw] [buy|sell <symbol>]...

  Replays the trades, in order, on a fresh ledger funded with
  PAPERTRADE_STARTING_CASH, prints the outcome of each trade then the %[1]s
  view. A trade that fails is reported and the replay continues; the exit
  status is non zero if any trade failed.

Usage Examples:
$ papertrade %[1]s buy RELIANCE buy RELIANCE sell TCS
`, c.view)
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.raw, "raw", false, "Print raw markdown instead of rendering it for the terminal.")
}

func (c *sessionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	actions, err := parseActions(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing trades: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	log, closer, err := cfg.Logger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closer.Close()

	ledger, catalog, err := NewLedger(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	output, ok := replay(ledger, actions)
	screen, err := renderer.NewScreen(ledger, catalog, c.view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building the %s: %v\n", c.view, err)
		return subcommands.ExitFailure
	}
	output += renderer.RenderScreen(screen)

	if c.raw {
		fmt.Print(output)
	} else {
		printMarkdown(output)
	}
	if !ok {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
