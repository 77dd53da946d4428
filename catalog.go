package papertrade

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// Catalog is the static, ordered set of tradeable instruments. It supplies the
// current reference price of every symbol to the Ledger.
type Catalog struct {
	currency    string
	instruments []Instrument
	index       map[string]int // position in instruments by symbol
}

// NewCatalog returns a catalog of instruments priced in currency.
//
// Symbols must be unique and non-empty, prices must be in the catalog
// currency and not negative.
func NewCatalog(currency string, instruments ...Instrument) (*Catalog, error) {
	if err := ValidateCurrency(currency); err != nil {
		return nil, fmt.Errorf("invalid catalog currency: %w", err)
	}
	c := &Catalog{
		currency:    currency,
		instruments: make([]Instrument, 0, len(instruments)),
		index:       make(map[string]int, len(instruments)),
	}
	var errs error
	for _, ins := range instruments {
		if err := c.add(ins); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return nil, errs
	}
	return c, nil
}

func (c *Catalog) add(ins Instrument) error {
	switch {
	case ins.symbol == "":
		return errors.New("instrument symbol is missing")
	case c.Has(ins.symbol):
		return fmt.Errorf("instrument %q is already defined", ins.symbol)
	case ins.price.IsNegative():
		return fmt.Errorf("instrument %q price must not be negative, got %s", ins.symbol, ins.price.Fixed())
	case ins.price.cur != c.currency:
		return fmt.Errorf("instrument %q is priced in %q, catalog currency is %q", ins.symbol, ins.price.cur, c.currency)
	}
	c.index[ins.symbol] = len(c.instruments)
	c.instruments = append(c.instruments, ins)
	return nil
}

// DefaultCatalog returns the built-in set of NSE instruments, priced in currency.
func DefaultCatalog(currency string) *Catalog {
	c, err := NewCatalog(currency,
		NewInstrument("RELIANCE", "Reliance Industries", M(2540.50, currency), P(1.2)),
		NewInstrument("TCS", "Tata Consultancy Services", M(3420.80, currency), P(-0.5)),
		NewInstrument("INFY", "Infosys Limited", M(1510.20, currency), P(0.8)),
		NewInstrument("HDFC", "HDFC Bank", M(1650.00, currency), P(-1.1)),
		NewInstrument("ICICI", "ICICI Bank", M(920.45, currency), P(2.3)),
		NewInstrument("WIPRO", "Wipro Limited", M(410.15, currency), P(-0.2)),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Currency returns the currency every instrument is priced in.
func (c *Catalog) Currency() string { return c.currency }

func (c *Catalog) Len() int { return len(c.instruments) }

// Has returns true if symbol is part of the catalog.
func (c *Catalog) Has(symbol string) bool {
	_, ok := c.index[symbol]
	return ok
}

// Instrument returns the instrument for symbol.
func (c *Catalog) Instrument(symbol string) (Instrument, bool) {
	i, ok := c.index[symbol]
	if !ok {
		return Instrument{}, false
	}
	return c.instruments[i], true
}

// Price returns the current reference price of symbol.
func (c *Catalog) Price(symbol string) (Money, bool) {
	ins, ok := c.Instrument(symbol)
	return ins.price, ok
}

// Instruments iterates over the catalog in its declaration order.
func (c *Catalog) Instruments() iter.Seq[Instrument] {
	return slices.Values(c.instruments)
}

// Symbols returns all the symbols in declaration order.
func (c *Catalog) Symbols() []string {
	symbols := make([]string, 0, len(c.instruments))
	for _, ins := range c.instruments {
		symbols = append(symbols, ins.symbol)
	}
	return symbols
}
