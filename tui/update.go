package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/etnz/papertrade"
	"github.com/etnz/papertrade/renderer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case clearMsg:
		if m.notification != nil && msg.seq == m.seq && !m.notification.Blocking() {
			m.notification = nil
		}

	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			return m, tea.Quit
		}
		// an error must be acknowledged before anything else happens.
		if m.notification != nil && m.notification.Blocking() {
			if key.Matches(msg, keys.Dismiss) {
				m.notification = nil
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < m.rows()-1 {
				m.cursor++
			}
		case key.Matches(msg, keys.Switch):
			m = m.show(m.view.Toggle())
		case key.Matches(msg, keys.Market):
			m = m.show(renderer.MarketView)
		case key.Matches(msg, keys.Portfolio):
			m = m.show(renderer.PortfolioView)
		case key.Matches(msg, keys.Buy):
			// the portfolio rows only offer to sell.
			if m.view != renderer.MarketView {
				return m, nil
			}
			if symbol, ok := m.selected(); ok {
				trade, err := m.ledger.Buy(symbol)
				return m.notify(trade, err)
			}
		case key.Matches(msg, keys.Sell):
			if symbol, ok := m.selected(); ok {
				trade, err := m.ledger.Sell(symbol)
				return m.notify(trade, err)
			}
		}
	}
	return m, nil
}

// show switches to view v.
func (m Model) show(v renderer.View) Model {
	if m.view != v {
		m.view = v
		m.cursor = 0
	}
	return m
}

// notify displays the outcome of a trade.
func (m Model) notify(trade papertrade.Trade, err error) (tea.Model, tea.Cmd) {
	n := renderer.Notify(trade, err)
	m.notification = &n
	m.seq++
	if err != nil {
		m.log.Info().Err(err).Msg(n.String())
	} else {
		m.log.Info().Str("side", string(trade.Side)).Str("symbol", trade.Symbol).Stringer("cash", trade.Cash).Msg(n.String())
	}

	// a sale may remove the row under the cursor.
	if rows := m.rows(); m.cursor >= rows && rows > 0 {
		m.cursor = rows - 1
	} else if rows == 0 {
		m.cursor = 0
	}

	if n.Blocking() {
		return m, nil
	}
	return m, clearAfter(m.timeout, m.seq)
}
