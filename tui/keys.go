package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Switch    key.Binding
	Market    key.Binding
	Portfolio key.Binding
	Buy       key.Binding
	Sell      key.Binding
	Dismiss   key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Switch:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch view")),
	Market:    key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "market")),
	Portfolio: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "portfolio")),
	Buy:       key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "buy 1")),
	Sell:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sell 1")),
	Dismiss:   key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "dismiss")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Buy, k.Sell, k.Switch, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Buy, k.Sell, k.Dismiss},
		{k.Switch, k.Market, k.Portfolio},
		{k.Help, k.Quit},
	}
}
