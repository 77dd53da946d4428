package papertrade

import "encoding/json"

// Instrument is a tradeable security of the catalog. It is immutable.
type Instrument struct {
	symbol string  // The unique ticker, e.g. RELIANCE.
	name   string  // Human readable name.
	price  Money   // Current reference price of one share.
	change Percent // Day change.
}

func NewInstrument(symbol, name string, price Money, change Percent) Instrument {
	return Instrument{
		symbol: symbol,
		name:   name,
		price:  price,
		change: change,
	}
}

// Symbol returns the unique ticker of the instrument.
func (i Instrument) Symbol() string {
	return i.symbol
}

func (i Instrument) Name() string {
	return i.name
}

// Price returns the current reference price of one share.
func (i Instrument) Price() Money {
	return i.price
}

// Change returns the day change percentage.
func (i Instrument) Change() Percent {
	return i.change
}

// MarshalJSON writes the instrument in the catalog file format.
func (i Instrument) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol string      `json:"symbol"`
		Name   string      `json:"name,omitempty"`
		Price  json.Number `json:"price"`
		Change json.Number `json:"change"`
	}{i.symbol, i.name, json.Number(i.price.value.String()), json.Number(i.change.value.String())})
}
