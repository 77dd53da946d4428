package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	figure "github.com/common-nighthawk/go-figure"

	"github.com/etnz/papertrade/renderer"
)

const title = "Paper Trading"

func (m Model) View() string {
	screen, err := renderer.NewScreen(m.ledger, m.catalog, m.view)
	if err != nil {
		return failureStyle.Render(fmt.Sprintf("Cannot display the %s: %v", m.view, err))
	}

	var body string
	if screen.Market != nil {
		body = m.viewMarket(screen.Market)
	} else {
		body = m.viewPortfolio(screen.Portfolio)
	}

	parts := []string{
		m.viewTitle(),
		m.viewHeader(screen.Header),
		m.viewTabs(),
		body,
	}
	if n := m.viewNotification(); n != "" {
		parts = append(parts, n)
	}
	parts = append(parts, m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewTitle renders the title as a banner when the terminal is wide enough.
func (m Model) viewTitle() string {
	banner := strings.Join(figure.NewFigure(title, "small", true).Slicify(), "\n")
	if m.width == 0 || lipgloss.Width(banner) > m.width {
		return titleStyle.Render(title)
	}
	return titleStyle.Render(banner)
}

func (m Model) viewHeader(h renderer.Header) string {
	total := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render("Total Value"), valueStyle.Render(h.TotalValue))
	cash := lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render("Cash Available"), valueStyle.Render(h.Cash))
	return cardStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, total, "    ", cash))
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, 2)
	for _, v := range []renderer.View{renderer.MarketView, renderer.PortfolioView} {
		label := strings.ToUpper(v.String()[:1]) + v.String()[1:]
		if v == m.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n"
}

func (m Model) pointer(i int) string {
	if i == m.cursor {
		return cursorStyle.Render("> ")
	}
	return "  "
}

func (m Model) viewMarket(market *renderer.Market) string {
	lines := make([]string, 0, len(market.Rows))
	for i, row := range market.Rows {
		actions := buyStyle.Render("[BUY]")
		if row.Held {
			actions += " " + sellStyle.Render("[SELL]") + labelStyle.Render(fmt.Sprintf(" x%d", row.Quantity))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.pointer(i),
			symbolStyle.Render(row.Symbol),
			nameStyle.Render(row.Name),
			priceStyle.Render(row.Price),
			" ",
			changeStyles[row.Style].Render(row.Change),
			"  ",
			actions,
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewPortfolio(p *renderer.Portfolio) string {
	if p.Empty {
		return emptyStyle.Render("No stocks in portfolio")
	}
	lines := make([]string, 0, len(p.Rows))
	for i, row := range p.Rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			m.pointer(i),
			symbolStyle.Render(row.Symbol),
			nameStyle.Render(fmt.Sprintf("%d Shares", row.Quantity)),
			priceStyle.Render(row.MarketValue),
			labelStyle.Render(fmt.Sprintf("  Avg: %s", row.AverageCost)),
			"  ",
			sellStyle.Render("[SELL]"),
		))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewNotification() string {
	if m.notification == nil {
		return ""
	}
	if m.notification.Blocking() {
		return "\n" + failureStyle.Render(m.notification.String()+labelStyle.Render("  (enter to dismiss)"))
	}
	return "\n" + successStyle.Render(m.notification.String())
}
