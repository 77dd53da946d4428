package renderer

import (
	"errors"
	"fmt"

	"github.com/etnz/papertrade"
)

// Kind tells a successful trade from a rejected one.
type Kind int

const (
	Success Kind = iota
	Failure
)

// Notification is the message shown to the user after a trade attempt.
type Notification struct {
	Kind    Kind
	Title   string
	Message string
}

// Blocking returns true if the user must acknowledge the notification.
func (n Notification) Blocking() bool { return n.Kind == Failure }

func (n Notification) String() string { return n.Title + ": " + n.Message }

// Notify returns the notification for the outcome of a Buy or Sell.
func Notify(t papertrade.Trade, err error) Notification {
	switch {
	case errors.Is(err, papertrade.ErrInsufficientFunds):
		return Notification{Kind: Failure, Title: "Inadequate Funds", Message: "You do not have enough virtual cash."}
	case errors.Is(err, papertrade.ErrNotOwned):
		return Notification{Kind: Failure, Title: "Error", Message: "You do not own this stock."}
	case err != nil:
		return Notification{Kind: Failure, Title: "Error", Message: err.Error()}
	case t.Side == papertrade.SideSell:
		return Notification{Kind: Success, Title: "Success", Message: fmt.Sprintf("Sold 1 share of %s", t.Symbol)}
	default:
		return Notification{Kind: Success, Title: "Success", Message: fmt.Sprintf("Bought 1 share of %s", t.Symbol)}
	}
}
