// Package tui is the interactive trading screen.
//
// The model only holds presentation state (active view, cursor,
// notification); every financial value is read from the Ledger.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
)

// DefaultNotificationTimeout is how long a successful trade notification stays on screen.
const DefaultNotificationTimeout = 3 * time.Second

type Model struct {
	ledger  *papertrade.Ledger
	catalog *papertrade.Catalog
	log     zerolog.Logger
	timeout time.Duration

	// UI state
	view         renderer.View
	cursor       int
	notification *renderer.Notification
	seq          int // identifies the current notification
	width        int
	help         help.Model
}

// Messages

// clearMsg expires the notification seq.
type clearMsg struct {
	seq int
}

// Option configures a Model.
type Option func(*Model)

func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithNotificationTimeout sets how long successful trade notifications are shown.
func WithNotificationTimeout(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithView sets the initial view.
func WithView(v renderer.View) Option {
	return func(m *Model) { m.view = v }
}

func NewModel(ledger *papertrade.Ledger, catalog *papertrade.Catalog, opts ...Option) Model {
	m := Model{
		ledger:  ledger,
		catalog: catalog,
		log:     zerolog.Nop(),
		timeout: DefaultNotificationTimeout,
		view:    renderer.MarketView,
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Commands

func clearAfter(d time.Duration, seq int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearMsg{seq: seq}
	})
}

// rows returns the number of selectable rows of the active view.
func (m Model) rows() int {
	if m.view == renderer.MarketView {
		return m.catalog.Len()
	}
	return len(m.ledger.Holdings())
}

// selected returns the symbol under the cursor, if any.
func (m Model) selected() (string, bool) {
	if m.view == renderer.MarketView {
		symbols := m.catalog.Symbols()
		if m.cursor < len(symbols) {
			return symbols[m.cursor], true
		}
		return "", false
	}
	holdings := m.ledger.Holdings()
	if m.cursor < len(holdings) {
		return holdings[m.cursor].Symbol, true
	}
	return "", false
}
