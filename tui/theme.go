package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/etnz/papertrade/renderer"
)

// Theme holds the semantic color palette of the screen.
type Theme struct {
	Border  lipgloss.Color
	Muted   lipgloss.Color
	Text    lipgloss.Color
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

// Default theme uses Charmbracelet's CharmTone palette.
var Default = Theme{
	Border:  lipgloss.Color("#4D4C57"), // Iron
	Muted:   lipgloss.Color("#858392"), // Squid
	Text:    lipgloss.Color("#DFDBDD"), // Ash
	Primary: lipgloss.Color("#6B50FF"), // Charple
	Accent:  lipgloss.Color("#FF60FF"), // Dolly
	Success: lipgloss.Color("#00FFB2"), // Julep
	Error:   lipgloss.Color("#E94090"),
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(Default.Primary).Bold(true)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Default.Primary).Padding(0, 2)
	labelStyle     = lipgloss.NewStyle().Foreground(Default.Muted)
	valueStyle     = lipgloss.NewStyle().Foreground(Default.Text).Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(Default.Muted).Padding(0, 2)
	activeTabStyle = lipgloss.NewStyle().Foreground(Default.Accent).Bold(true).Underline(true).Padding(0, 2)
	symbolStyle    = lipgloss.NewStyle().Foreground(Default.Text).Bold(true).Width(10)
	nameStyle      = lipgloss.NewStyle().Foreground(Default.Muted).Width(28)
	priceStyle     = lipgloss.NewStyle().Foreground(Default.Text).Width(12).Align(lipgloss.Right)
	cursorStyle    = lipgloss.NewStyle().Foreground(Default.Accent).Bold(true)
	buyStyle       = lipgloss.NewStyle().Foreground(Default.Success).Bold(true)
	sellStyle      = lipgloss.NewStyle().Foreground(Default.Error).Bold(true)
	emptyStyle     = lipgloss.NewStyle().Foreground(Default.Muted).Italic(true).Padding(1, 2)
	successStyle   = lipgloss.NewStyle().Foreground(Default.Success)
	failureStyle   = lipgloss.NewStyle().Foreground(Default.Error).Bold(true).Border(lipgloss.NormalBorder()).BorderForeground(Default.Error).Padding(0, 1)
)

// changeStyles renders a day change according to its sign.
var changeStyles = map[renderer.Style]lipgloss.Style{
	renderer.Positive: lipgloss.NewStyle().Foreground(Default.Success).Width(8).Align(lipgloss.Right),
	renderer.Negative: lipgloss.NewStyle().Foreground(Default.Error).Width(8).Align(lipgloss.Right),
}
