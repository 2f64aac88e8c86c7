package kubera

import (
	"encoding/json"
	"testing"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1353000, "USD"), "$1,353,000.00"},
		{M(12000.55, "USD"), "$12,000.55"},
		{M(-3125, "USD"), "-$3,125.00"},
		{M(0, "USD"), "$0.00"},
	}
	for _, tc := range tests {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q want %q", got, tc.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(6205, "USD"), "+$6,205.00"},
		{M(-3125, "USD"), "-$3,125.00"},
		{M(0, "USD"), "-"},
	}
	for _, tc := range tests {
		if got := tc.m.SignedString(); got != tc.want {
			t.Errorf("SignedString() = %q want %q", got, tc.want)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a, b := usd(105000), usd(100000)
	if got := a.Sub(b); !got.Equal(usd(5000)) {
		t.Errorf("Sub = %v want %v", got, usd(5000))
	}
	if got := usd(-3125).Abs(); !got.Equal(usd(3125)) {
		t.Errorf("Abs = %v want %v", got, usd(3125))
	}

	// zero-value Money is a weak operand: the other side's currency wins
	var zero Money
	if got := zero.Add(usd(10)); got.Currency() != "USD" {
		t.Errorf("zero.Add currency = %q want USD", got.Currency())
	}
}

func TestMoneyJSON(t *testing.T) {
	b, err := json.Marshal(M(12000.55, "USD"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	// amount must stay a plain JSON number with key order fixed
	if got, want := string(b), `{"amount":12000.55,"currency":"USD"}`; got != want {
		t.Errorf("Marshal = %s want %s", got, want)
	}

	var back Money
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(M(12000.55, "USD")) {
		t.Errorf("round trip = %v want %v", back, M(12000.55, "USD"))
	}
}
