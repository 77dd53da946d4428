package papertrade

import (
	"errors"
	"sync"
	"testing"
)

func TestNewLedger(t *testing.T) {
	if _, err := NewLedger(testCatalog(), INR(-1)); err == nil {
		t.Error("NewLedger() with negative cash expected an error")
	}
	if _, err := NewLedger(nil, INR(1)); err == nil {
		t.Error("NewLedger() without price source expected an error")
	}
	if _, err := NewLedger(testCatalog(), Money{}); err == nil {
		t.Error("NewLedger() without currency expected an error")
	}
	if _, err := NewLedger(testCatalog(), M(1, "USD")); err == nil {
		t.Error("NewLedger() with cash in another currency than the catalog expected an error")
	}
	l := newTestLedger(100000)
	if !l.Cash().Equal(INR(100000)) {
		t.Errorf("Cash() = %v, want 100000", l.Cash())
	}
	if got := l.Holdings(); len(got) != 0 {
		t.Errorf("Holdings() = %v, want empty", got)
	}
}

// TestLedger_Scenario follows a session on the default catalog.
func TestLedger_Scenario(t *testing.T) {
	l, err := NewLedger(DefaultCatalog("INR"), INR(100000))
	if err != nil {
		t.Fatalf("NewLedger() unexpected error: %v", err)
	}

	steps := []struct {
		name         string
		op           func(string) (Trade, error)
		wantCash     Money
		wantQuantity int
		wantAverage  Money
	}{
		{"buy", l.Buy, INR(97459.50), 1, INR(2540.50)},
		{"buy again", l.Buy, INR(94919.00), 2, INR(2540.50)},
		{"sell", l.Sell, INR(97459.50), 1, INR(2540.50)},
	}
	for _, step := range steps {
		trade, err := step.op("RELIANCE")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", step.name, err)
		}
		if !trade.Cash.Equal(step.wantCash) {
			t.Errorf("%s: trade.Cash = %v, want %v", step.name, trade.Cash.value, step.wantCash.value)
		}
		if !l.Cash().Equal(step.wantCash) {
			t.Errorf("%s: Cash() = %v, want %v", step.name, l.Cash().value, step.wantCash.value)
		}
		h, ok := l.Holding("RELIANCE")
		if !ok {
			t.Fatalf("%s: RELIANCE is not held", step.name)
		}
		if h.Quantity != step.wantQuantity {
			t.Errorf("%s: Quantity = %d, want %d", step.name, h.Quantity, step.wantQuantity)
		}
		if !h.AverageCost.Equal(step.wantAverage) {
			t.Errorf("%s: AverageCost = %v, want %v", step.name, h.AverageCost.value, step.wantAverage.value)
		}
	}
}

func TestLedger_WeightedAverage(t *testing.T) {
	q := quotes{"AAA": INR(100)}
	l := newQuotesLedger(1000, q)
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	q["AAA"] = INR(200)
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("second buy: %v", err)
	}
	h, _ := l.Holding("AAA")
	if h.Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", h.Quantity)
	}
	if !h.AverageCost.Equal(INR(150)) {
		t.Errorf("AverageCost = %v, want 150", h.AverageCost.value)
	}
	if !l.Cash().Equal(INR(700)) {
		t.Errorf("Cash() = %v, want 700", l.Cash().value)
	}
}

func TestLedger_AverageKeepsFullPrecision(t *testing.T) {
	q := quotes{}
	l := newQuotesLedger(1000, q)
	// after the third buy 31/3 is not representable with 2 digits: the last buy
	// must use the exact value.
	for _, p := range []float64{10, 10, 11, 11} {
		q["AAA"] = INR(p)
		if _, err := l.Buy("AAA"); err != nil {
			t.Fatalf("buy at %v: %v", p, err)
		}
	}
	h, _ := l.Holding("AAA")
	if got := h.AverageCost.value.Round(8).String(); got != "10.5" {
		t.Errorf("AverageCost = %v, want 10.5", h.AverageCost.value)
	}
}

func TestLedger_BuyInsufficientFunds(t *testing.T) {
	l := newTestLedger(150)
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("Buy(AAA) unexpected error: %v", err)
	}
	_, err := l.Buy("AAA")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("Buy(AAA) error = %v, want ErrInsufficientFunds", err)
	}
	if !l.Cash().Equal(INR(50)) {
		t.Errorf("Cash() = %v, want 50", l.Cash().value)
	}
	h, _ := l.Holding("AAA")
	if h.Quantity != 1 || !h.AverageCost.Equal(INR(100)) {
		t.Errorf("Holding(AAA) = %+v, want 1 share at 100", h)
	}
}

func TestLedger_BuyExactBalance(t *testing.T) {
	l := newTestLedger(100)
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("Buy(AAA) with exact cash unexpected error: %v", err)
	}
	if !l.Cash().IsZero() {
		t.Errorf("Cash() = %v, want 0", l.Cash().value)
	}
}

func TestLedger_SellNotOwned(t *testing.T) {
	l := newTestLedger(1000)
	_, err := l.Sell("AAA")
	if !errors.Is(err, ErrNotOwned) {
		t.Fatalf("Sell(AAA) error = %v, want ErrNotOwned", err)
	}
	if !l.Cash().Equal(INR(1000)) {
		t.Errorf("Cash() = %v, want 1000", l.Cash().value)
	}
	if _, err := l.Sell("ZZZ"); !errors.Is(err, ErrNotOwned) {
		t.Errorf("Sell(ZZZ) error = %v, want ErrNotOwned", err)
	}
}

func TestLedger_BuyUnknownSymbol(t *testing.T) {
	l := newTestLedger(1000)
	if _, err := l.Buy("ZZZ"); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("Buy(ZZZ) error = %v, want ErrUnknownSymbol", err)
	}
	if !l.Cash().Equal(INR(1000)) {
		t.Errorf("Cash() = %v, want 1000", l.Cash().value)
	}
}

func TestLedger_SellDelisted(t *testing.T) {
	q := quotes{"ZZZ": INR(10)}
	l := newQuotesLedger(1000, q)
	if _, err := l.Buy("ZZZ"); err != nil {
		t.Fatalf("Buy(ZZZ): %v", err)
	}
	delete(q, "ZZZ")
	if _, err := l.Sell("ZZZ"); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("Sell(ZZZ) error = %v, want ErrUnknownSymbol", err)
	}
	if h, ok := l.Holding("ZZZ"); !ok || h.Quantity != 1 {
		t.Errorf("Holding(ZZZ) = %+v, %v, want 1 share", h, ok)
	}
	if _, err := l.TotalValue(); !errors.Is(err, ErrUnknownSymbol) {
		t.Errorf("TotalValue() error = %v, want ErrUnknownSymbol", err)
	}
}

func TestLedger_InvalidPrice(t *testing.T) {
	testCases := []struct {
		name  string
		price Money
	}{
		{"negative", INR(-50)},
		{"other currency", M(10, "USD")},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := quotes{"AAA": tc.price, "BBB": INR(10)}
			l := newQuotesLedger(100, q)
			if _, err := l.Buy("AAA"); !errors.Is(err, ErrInvalidPrice) {
				t.Fatalf("Buy(AAA) error = %v, want ErrInvalidPrice", err)
			}
			if !l.Cash().Equal(INR(100)) {
				t.Errorf("Cash() = %v, want 100", l.Cash().value)
			}
			if l.IsHeld("AAA") {
				t.Error("AAA is held after a rejected buy")
			}

			if _, err := l.Buy("BBB"); err != nil {
				t.Fatalf("Buy(BBB): %v", err)
			}
			q["BBB"] = tc.price
			if _, err := l.Sell("BBB"); !errors.Is(err, ErrInvalidPrice) {
				t.Fatalf("Sell(BBB) error = %v, want ErrInvalidPrice", err)
			}
			if !l.Cash().Equal(INR(90)) {
				t.Errorf("Cash() = %v, want 90", l.Cash().value)
			}
			if _, err := l.TotalValue(); !errors.Is(err, ErrInvalidPrice) {
				t.Errorf("TotalValue() error = %v, want ErrInvalidPrice", err)
			}
		})
	}
}

func TestLedger_BuySellRoundTrip(t *testing.T) {
	l := newTestLedger(1000)
	before := l.Cash()
	if _, err := l.Buy("CCC"); err != nil {
		t.Fatalf("Buy(CCC): %v", err)
	}
	trade, err := l.Sell("CCC")
	if err != nil {
		t.Fatalf("Sell(CCC): %v", err)
	}
	if trade.Quantity != 0 {
		t.Errorf("trade.Quantity = %d, want 0", trade.Quantity)
	}
	if !l.Cash().Equal(before) {
		t.Errorf("Cash() = %v, want %v", l.Cash().value, before.value)
	}
	if l.IsHeld("CCC") {
		t.Error("CCC is still held after selling the only share")
	}
	if got := l.Holdings(); len(got) != 0 {
		t.Errorf("Holdings() = %v, want empty", got)
	}
}

func TestLedger_SellCreditsCurrentPrice(t *testing.T) {
	q := quotes{"AAA": INR(60)}
	l := newQuotesLedger(1000, q)
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("Buy(AAA): %v", err)
	}
	// bought below the current price: the sale credits the current price.
	q["AAA"] = INR(100)
	trade, err := l.Sell("AAA")
	if err != nil {
		t.Fatalf("Sell(AAA): %v", err)
	}
	if !trade.Price.Equal(INR(100)) {
		t.Errorf("trade.Price = %v, want 100", trade.Price.value)
	}
	if !l.Cash().Equal(INR(1040)) {
		t.Errorf("Cash() = %v, want 1040", l.Cash().value)
	}
}

func TestLedger_HoldingsOrder(t *testing.T) {
	l := newTestLedger(10000)
	for _, s := range []string{"BBB", "AAA", "BBB", "CCC"} {
		if _, err := l.Buy(s); err != nil {
			t.Fatalf("Buy(%s): %v", s, err)
		}
	}
	if _, err := l.Sell("AAA"); err != nil {
		t.Fatalf("Sell(AAA): %v", err)
	}
	if _, err := l.Buy("AAA"); err != nil {
		t.Fatalf("Buy(AAA): %v", err)
	}

	want := []struct {
		symbol   string
		quantity int
	}{{"BBB", 2}, {"CCC", 1}, {"AAA", 1}}
	got := l.Holdings()
	if len(got) != len(want) {
		t.Fatalf("Holdings() = %v, want %v", got, want)
	}
	for i, w := range want {
		if got[i].Symbol != w.symbol || got[i].Quantity != w.quantity {
			t.Errorf("Holdings()[%d] = %s x%d, want %s x%d", i, got[i].Symbol, got[i].Quantity, w.symbol, w.quantity)
		}
	}
}

func TestLedger_TotalValue(t *testing.T) {
	l := newTestLedger(1000)
	for _, s := range []string{"AAA", "BBB", "BBB", "CCC"} {
		if _, err := l.Buy(s); err != nil {
			t.Fatalf("Buy(%s): %v", s, err)
		}
	}
	total, err := l.TotalValue()
	if err != nil {
		t.Fatalf("TotalValue() unexpected error: %v", err)
	}
	// prices equal costs in a static catalog, the total value is the starting cash.
	if !total.Equal(INR(1000)) {
		t.Errorf("TotalValue() = %v, want 1000", total.value)
	}

	positions, err := l.Positions()
	if err != nil {
		t.Fatalf("Positions() unexpected error: %v", err)
	}
	if len(positions) != 3 {
		t.Fatalf("Positions() returned %d positions, want 3", len(positions))
	}
	if got := positions[1].MarketValue(); !got.Equal(INR(400)) {
		t.Errorf("BBB MarketValue() = %v, want 400", got.value)
	}
	if got := positions[1].Gain(); !got.IsZero() {
		t.Errorf("BBB Gain() = %v, want 0", got.value)
	}
}

func TestLedger_Concurrent(t *testing.T) {
	l := newTestLedger(1000)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.Buy("AAA")
		}()
		go func() {
			defer wg.Done()
			l.Sell("AAA")
		}()
	}
	wg.Wait()

	if l.Cash().IsNegative() {
		t.Fatalf("Cash() = %v, want non negative", l.Cash().value)
	}
	total, err := l.TotalValue()
	if err != nil {
		t.Fatalf("TotalValue(): %v", err)
	}
	if !total.Equal(INR(1000)) {
		t.Errorf("TotalValue() = %v, want 1000", total.value)
	}
}
