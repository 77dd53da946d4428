package renderer

import "github.com/etnz/papertrade"

// FormatPrice formats a per-share amount with exactly two decimals and no
// grouping: ₹2540.50.
func FormatPrice(m papertrade.Money) string { return m.Fixed() }

// FormatTotal formats an aggregate amount with the currency's grouping: ₹97,459.50.
func FormatTotal(m papertrade.Money) string { return m.String() }

// FormatChange formats a day change with an explicit sign for non-negative
// values: +1.2%, +0%, -0.5%.
func FormatChange(p papertrade.Percent) string { return p.SignedString() }
