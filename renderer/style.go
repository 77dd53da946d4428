package renderer

import "github.com/etnz/papertrade"

// Style is the visual treatment of a signed value.
type Style int

const (
	Positive Style = iota
	Negative
)

func (s Style) String() string {
	if s == Negative {
		return "negative"
	}
	return "positive"
}

// StyleOf returns Negative for a negative change, Positive otherwise.
func StyleOf(p papertrade.Percent) Style {
	if p.IsNegative() {
		return Negative
	}
	return Positive
}
