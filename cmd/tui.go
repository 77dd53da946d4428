package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/subcommands"

	"github.com/etnz/papertrade/renderer"
	"github.com/etnz/papertrade/tui"
)

type tuiCmd struct {
	view string
}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "trade interactively on the market and portfolio screens" }
func (*tuiCmd) Usage() string {
	return `papertrade tui [-view market|portfolio]

  Opens the trading screen with a fresh ledger. Nothing is saved when the
  screen is closed.

  Keys:
    tab, m, p   switch between the market and the portfolio
    up/k down/j move the selection
    b           buy one share of the selected instrument
    s           sell one share of the selected instrument
    enter, esc  dismiss an error
    ?           show all keys
    q           quit

  Logs are only written when PAPERTRADE_LOG_FILE is set.
`
}

func (c *tuiCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.view, "view", "market", "The initial view (market, portfolio).")
}

func (c *tuiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := renderer.ParseView(c.view)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing view: %v\n", err)
		return subcommands.ExitUsageError
	}
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	// the terminal belongs to the screen, logs can only go to a file.
	log, closer, err := cfg.Logger(nil)
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

	m := tui.NewModel(ledger, catalog,
		tui.WithLogger(log),
		tui.WithNotificationTimeout(cfg.NotificationTimeout),
		tui.WithView(view),
	)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running the trading screen: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
