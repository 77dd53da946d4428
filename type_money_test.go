package papertrade

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{INR(100000), "₹100,000.00"},
		{INR(97459.50), "₹97,459.50"},
		{INR(2540.505), "₹2,540.51"},
		{INR(0), "₹0.00"},
		{M(1234.5, "USD"), "$1,234.50"},
	}
	for _, tc := range testCases {
		if got := tc.money.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.money.value, got, tc.want)
		}
	}
}

func TestMoney_Fixed(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{INR(2540.50), "₹2540.50"},
		{INR(920.45), "₹920.45"},
		{INR(1650), "₹1650.00"},
		{INR(100000), "₹100000.00"},
		{INR(-3.5), "-₹3.50"},
		{M(12.3, "USD"), "$12.30"},
	}
	for _, tc := range testCases {
		if got := tc.money.Fixed(); got != tc.want {
			t.Errorf("%v.Fixed() = %q, want %q", tc.money.value, got, tc.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := INR(2540.50)
	if got, want := a.Mul(2), INR(5081); !got.Equal(want) {
		t.Errorf("Mul(2) = %v, want %v", got.value, want.value)
	}
	if got, want := a.Mul(3).Div(3), a; !got.Equal(want) {
		t.Errorf("Mul(3).Div(3) = %v, want %v", got.value, want.value)
	}
	if got, want := INR(100000).Sub(a), INR(97459.50); !got.Equal(want) {
		t.Errorf("Sub = %v, want %v", got.value, want.value)
	}
	// the empty currency is weak
	if got := (Money{}).Add(a); got.Currency() != "INR" {
		t.Errorf("Add on zero money has currency %q, want INR", got.Currency())
	}
}

func TestMoney_CurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding INR and USD did not panic")
		}
	}()
	INR(1).Add(M(1, "USD"))
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney(" 100000 ", "INR")
	if err != nil {
		t.Fatalf("ParseMoney() unexpected error: %v", err)
	}
	if !m.Equal(INR(100000)) {
		t.Errorf("ParseMoney() = %v, want 100000", m.value)
	}
	if _, err := ParseMoney("lakh", "INR"); err == nil {
		t.Error("ParseMoney(\"lakh\") expected an error")
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []string{"INR", "EUR", "USD"} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("ValidateCurrency(%q) unexpected error: %v", code, err)
		}
	}
	for _, code := range []string{"", "XYZW", "rupee"} {
		if err := ValidateCurrency(code); err == nil {
			t.Errorf("ValidateCurrency(%q) expected an error", code)
		}
	}
}
