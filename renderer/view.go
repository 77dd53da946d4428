// Package renderer derives what the screen displays from a Ledger and a
// Catalog, and renders it as markdown.
//
// Nothing in this package mutates the ledger.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/papertrade"
)

// View is the collection the screen is displaying.
type View int

const (
	MarketView View = iota
	PortfolioView
)

func (v View) String() string {
	switch v {
	case MarketView:
		return "market"
	case PortfolioView:
		return "portfolio"
	default:
		return "unknown"
	}
}

// Toggle returns the other view.
func (v View) Toggle() View {
	if v == MarketView {
		return PortfolioView
	}
	return MarketView
}

// ParseView parses "market" or "portfolio".
func ParseView(s string) (View, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "market":
		return MarketView, nil
	case "portfolio":
		return PortfolioView, nil
	default:
		return 0, fmt.Errorf("unknown view %q, want market or portfolio", s)
	}
}

// Header is the balance card shown above both views.
type Header struct {
	TotalValue string
	Cash       string
}

// MarketRow is one catalog instrument.
type MarketRow struct {
	Symbol   string
	Name     string
	Price    string
	Change   string
	Style    Style // Positive or Negative day change
	Held     bool  // the sell control is shown
	Quantity int   // shares held, 0 if not held
}

// Market lists the whole catalog.
type Market struct {
	Rows []MarketRow
}

// PortfolioRow is one holding valued at the current price.
type PortfolioRow struct {
	Symbol      string
	Name        string
	Quantity    int
	Price       string
	MarketValue string
	AverageCost string
}

// Portfolio lists the holdings. Empty is true when there is nothing to list
// and the "No stocks in portfolio" indicator must be displayed instead.
type Portfolio struct {
	Rows  []PortfolioRow
	Empty bool
}

// Screen is everything displayed for the active view: the header and exactly
// one of Market or Portfolio.
type Screen struct {
	View      View
	Header    Header
	Market    *Market
	Portfolio *Portfolio
}

// NewScreen derives the screen content for view.
func NewScreen(l *papertrade.Ledger, c *papertrade.Catalog, view View) (*Screen, error) {
	header, err := NewHeader(l)
	if err != nil {
		return nil, err
	}
	s := &Screen{View: view, Header: header}
	switch view {
	case MarketView:
		s.Market = NewMarket(l, c)
	case PortfolioView:
		if s.Portfolio, err = NewPortfolio(l, c); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported view %d", view)
	}
	return s, nil
}

// NewHeader formats the total value and the cash available.
func NewHeader(l *papertrade.Ledger) (Header, error) {
	total, err := l.TotalValue()
	if err != nil {
		return Header{}, fmt.Errorf("cannot compute total value: %w", err)
	}
	return Header{
		TotalValue: FormatTotal(total),
		Cash:       FormatTotal(l.Cash()),
	}, nil
}

// NewMarket lists every catalog instrument, in catalog order, annotated with
// its holding.
func NewMarket(l *papertrade.Ledger, c *papertrade.Catalog) *Market {
	m := &Market{Rows: make([]MarketRow, 0, c.Len())}
	for ins := range c.Instruments() {
		h, held := l.Holding(ins.Symbol())
		m.Rows = append(m.Rows, MarketRow{
			Symbol:   ins.Symbol(),
			Name:     ins.Name(),
			Price:    FormatPrice(ins.Price()),
			Change:   FormatChange(ins.Change()),
			Style:    StyleOf(ins.Change()),
			Held:     held,
			Quantity: h.Quantity,
		})
	}
	return m
}

// NewPortfolio lists the holdings in acquisition order. c provides the
// instrument names.
func NewPortfolio(l *papertrade.Ledger, c *papertrade.Catalog) (*Portfolio, error) {
	positions, err := l.Positions()
	if err != nil {
		return nil, err
	}
	p := &Portfolio{Empty: len(positions) == 0}
	for _, pos := range positions {
		ins, _ := c.Instrument(pos.Symbol)
		p.Rows = append(p.Rows, PortfolioRow{
			Symbol:      pos.Symbol,
			Name:        ins.Name(),
			Quantity:    pos.Quantity,
			Price:       FormatPrice(pos.Price),
			MarketValue: FormatPrice(pos.MarketValue()),
			AverageCost: FormatPrice(pos.AverageCost),
		})
	}
	return p, nil
}
