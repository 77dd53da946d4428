// Package papertrade simulates stock trading with virtual cash.
//
// The core functionalities include:
//   - Instrument Catalog: the static list of tradeable symbols with their
//     reference price and day change, built-in or decoded from a JSON file.
//   - Ledger: the authoritative, in-memory owner of the cash balance and of
//     the holdings. Buy and Sell trade exactly one share at the current
//     reference price, holdings keep a weighted-average cost.
//   - Money and Percent: exact decimal values with currency aware formatting.
//
// Nothing is persisted: a Ledger lives as long as the session that created
// it. The view model and the markdown rendering live in package renderer, the
// interactive screen in package tui.
package papertrade
