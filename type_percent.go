package papertrade

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is an exact percentage value: P(1.2) is 1.2%.
type Percent struct {
	value decimal.Decimal
}

// P returns value as a Percent.
func P[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses a decimal string, with or without a trailing '%'.
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if err != nil {
		return Percent{}, fmt.Errorf("invalid percentage %q: %w", s, err)
	}
	return Percent{value: d}, nil
}

func (p Percent) Decimal() decimal.Decimal { return p.value }
func (p Percent) Equal(q Percent) bool     { return p.value.Equal(q.value) }
func (p Percent) IsNegative() bool         { return p.value.IsNegative() }

func (p Percent) String() string {
	return p.value.String() + "%"
}

// SignedString returns the percentage with an explicit sign, non-negative
// values get a leading '+'.
func (p Percent) SignedString() string {
	if p.value.IsNegative() {
		return p.String()
	}
	return "+" + p.String()
}
