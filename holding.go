package papertrade

// Holding is a position in one instrument: how many shares are owned and their
// weighted-average purchase cost.
//
// A Holding only exists while Quantity is at least 1.
type Holding struct {
	Symbol      string
	Quantity    int
	AverageCost Money // full precision, never rounded
}

// Cost returns the total amount paid for the shares still held.
func (h Holding) Cost() Money { return h.AverageCost.Mul(h.Quantity) }

// bought returns the holding after buying one more share at price.
//
// The new average is computed from the stored full precision average, not
// from a displayed, rounded value.
func (h Holding) bought(price Money) Holding {
	q := h.Quantity
	h.AverageCost = h.AverageCost.Mul(q).Add(price).Div(q + 1)
	h.Quantity = q + 1
	return h
}

// Position is a Holding valued at the current reference price.
type Position struct {
	Holding
	Price Money // current reference price of one share
}

// MarketValue returns Quantity × Price.
func (p Position) MarketValue() Money { return p.Price.Mul(p.Quantity) }

// Gain returns the unrealized gain of the position against its cost.
func (p Position) Gain() Money { return p.MarketValue().Sub(p.Cost()) }
