package papertrade

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrInsufficientFunds is returned when buying an instrument priced above the cash balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrNotOwned is returned when selling a symbol that is not held.
	ErrNotOwned = errors.New("not owned")
	// ErrUnknownSymbol is returned when a symbol has no instrument in the catalog.
	ErrUnknownSymbol = errors.New("unknown symbol")
	// ErrInvalidPrice is returned when the price source quotes a negative
	// price, or a price in another currency than the cash balance.
	ErrInvalidPrice = errors.New("invalid price")
)

// Side is the direction of a trade.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// PriceSource supplies the current reference price of instruments.
// *Catalog is the PriceSource of a session.
type PriceSource interface {
	Instrument(symbol string) (Instrument, bool)
}

// Trade is the outcome of a successful Buy or Sell.
type Trade struct {
	ID       uuid.UUID
	Side     Side
	Symbol   string
	Price    Money // price of the single share traded
	Quantity int   // shares held after the trade
	Cash     Money // cash balance after the trade
}

// Ledger is the authoritative owner of the cash balance and the holdings.
// It is the only way to mutate them.
//
// Every method is safe for concurrent use, each Buy and Sell is applied
// atomically.
type Ledger struct {
	mu       sync.Mutex
	prices   PriceSource
	cash     Money
	holdings map[string]Holding // never contains a zero quantity
	order    []string           // held symbols, in acquisition order
	log      zerolog.Logger
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger that records every trade attempt.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Ledger) { l.log = log }
}

// NewLedger creates a ledger with startingCash and no holdings, valued with prices.
func NewLedger(prices PriceSource, startingCash Money, opts ...Option) (*Ledger, error) {
	if prices == nil {
		return nil, errors.New("ledger requires a price source")
	}
	if startingCash.IsNegative() {
		return nil, fmt.Errorf("starting cash must not be negative, got %s", startingCash)
	}
	if err := ValidateCurrency(startingCash.cur); err != nil {
		return nil, fmt.Errorf("invalid starting cash: %w", err)
	}
	if c, ok := prices.(*Catalog); ok && c.Currency() != startingCash.cur {
		return nil, fmt.Errorf("starting cash is in %q, catalog is priced in %q", startingCash.cur, c.Currency())
	}
	l := &Ledger{
		prices:   prices,
		cash:     startingCash,
		holdings: make(map[string]Holding),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Buy buys one share of the catalog instrument symbol at its current price.
//
// It fails with ErrInsufficientFunds, leaving the ledger unchanged, if the cash
// balance is below the price.
func (l *Ledger) Buy(symbol string) (Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	price, err := l.priceLocked(symbol)
	if err != nil {
		l.log.Debug().Str("symbol", symbol).Err(err).Msg("buy rejected")
		return Trade{}, fmt.Errorf("cannot buy %q: %w", symbol, err)
	}
	if l.cash.LessThan(price) {
		l.log.Debug().Str("symbol", symbol).Stringer("price", price).Stringer("cash", l.cash).Msg("buy rejected: insufficient funds")
		return Trade{}, fmt.Errorf("cannot buy %s for %s, cash balance is %s: %w", symbol, price, l.cash, ErrInsufficientFunds)
	}

	h, held := l.holdings[symbol]
	if !held {
		h = Holding{Symbol: symbol}
		l.order = append(l.order, symbol)
	}
	h = h.bought(price)
	l.holdings[symbol] = h
	l.cash = l.cash.Sub(price)

	return l.trade(SideBuy, symbol, price, h.Quantity), nil
}

// priceLocked returns the current price of symbol, checked against the cash
// balance currency. l.mu must be held.
func (l *Ledger) priceLocked(symbol string) (Money, error) {
	ins, ok := l.prices.Instrument(symbol)
	if !ok {
		return Money{}, ErrUnknownSymbol
	}
	price := ins.Price()
	switch {
	case price.IsNegative():
		return Money{}, fmt.Errorf("price %s is negative: %w", price.Fixed(), ErrInvalidPrice)
	case price.cur != l.cash.cur:
		return Money{}, fmt.Errorf("price is in %q, cash balance is in %q: %w", price.cur, l.cash.cur, ErrInvalidPrice)
	}
	return price, nil
}

// Sell sells one share of symbol at its current catalog price.
//
// It fails with ErrNotOwned, leaving the ledger unchanged, if symbol is not
// held. The cash balance is credited with the current price, not the average
// cost.
func (l *Ledger) Sell(symbol string) (Trade, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	h, held := l.holdings[symbol]
	if !held {
		l.log.Debug().Str("symbol", symbol).Msg("sell rejected: not owned")
		return Trade{}, fmt.Errorf("cannot sell %s: %w", symbol, ErrNotOwned)
	}
	price, err := l.priceLocked(symbol)
	if err != nil {
		l.log.Debug().Str("symbol", symbol).Err(err).Msg("sell rejected")
		return Trade{}, fmt.Errorf("cannot sell %q: %w", symbol, err)
	}

	h.Quantity--
	if h.Quantity == 0 {
		delete(l.holdings, symbol)
		l.order = slices.DeleteFunc(l.order, func(s string) bool { return s == symbol })
	} else {
		l.holdings[symbol] = h
	}
	l.cash = l.cash.Add(price)

	return l.trade(SideSell, symbol, price, h.Quantity), nil
}

// trade records a successful trade. l.mu must be held.
func (l *Ledger) trade(side Side, symbol string, price Money, quantity int) Trade {
	t := Trade{
		ID:       uuid.New(),
		Side:     side,
		Symbol:   symbol,
		Price:    price,
		Quantity: quantity,
		Cash:     l.cash,
	}
	l.log.Debug().
		Stringer("id", t.ID).
		Str("side", string(side)).
		Str("symbol", symbol).
		Stringer("price", price).
		Int("quantity", quantity).
		Stringer("cash", l.cash).
		Msg("trade")
	return t
}

// Cash returns the cash balance.
func (l *Ledger) Cash() Money {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cash
}

// Holding returns the holding of symbol, ok is false if symbol is not held.
func (l *Ledger) Holding(symbol string) (h Holding, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	h, ok = l.holdings[symbol]
	return
}

// IsHeld returns true if at least one share of symbol is owned.
func (l *Ledger) IsHeld(symbol string) bool {
	_, ok := l.Holding(symbol)
	return ok
}

// Holdings returns all the holdings in acquisition order.
func (l *Ledger) Holdings() []Holding {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holdingsLocked()
}

func (l *Ledger) holdingsLocked() []Holding {
	res := make([]Holding, 0, len(l.order))
	for _, s := range l.order {
		res = append(res, l.holdings[s])
	}
	return res
}

// Positions returns all the holdings, in acquisition order, joined with their
// current price.
func (l *Ledger) Positions() ([]Position, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.positionsLocked()
}

func (l *Ledger) positionsLocked() ([]Position, error) {
	holdings := l.holdingsLocked()
	res := make([]Position, 0, len(holdings))
	for _, h := range holdings {
		price, err := l.priceLocked(h.Symbol)
		if err != nil {
			return nil, fmt.Errorf("cannot value holding %q: %w", h.Symbol, err)
		}
		res = append(res, Position{Holding: h, Price: price})
	}
	return res, nil
}

// TotalValue returns the cash balance plus the market value of every holding at
// its current price.
func (l *Ledger) TotalValue() (Money, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	positions, err := l.positionsLocked()
	if err != nil {
		return Money{}, err
	}
	total := l.cash
	for _, p := range positions {
		total = total.Add(p.MarketValue())
	}
	return total, nil
}
