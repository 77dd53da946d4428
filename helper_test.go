package papertrade

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// testCatalog returns a catalog with round prices, easy to reason about.
func testCatalog() *Catalog {
	c, err := NewCatalog("INR",
		NewInstrument("AAA", "Triple A", INR(100), P(1)),
		NewInstrument("BBB", "Triple B", INR(200), P(-2)),
		NewInstrument("CCC", "Triple C", INR(0.35), P(0)),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// newTestLedger returns a ledger on the test catalog with cash rupees.
func newTestLedger(cash float64) *Ledger {
	l, err := NewLedger(testCatalog(), INR(cash))
	if err != nil {
		panic(err)
	}
	return l
}

// quotes is a PriceSource whose prices a test can change between trades.
type quotes map[string]Money

func (q quotes) Instrument(symbol string) (Instrument, bool) {
	price, ok := q[symbol]
	if !ok {
		return Instrument{}, false
	}
	return NewInstrument(symbol, "", price, P(0)), true
}

// newQuotesLedger returns a ledger priced by q with cash rupees.
func newQuotesLedger(cash float64, q quotes) *Ledger {
	l, err := NewLedger(q, INR(cash))
	if err != nil {
		panic(err)
	}
	return l
}
