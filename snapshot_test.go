package kubera

import (
	"testing"
	"time"
)

func TestAccountIsHolding(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"inv1", false},
		{"inv1_aapl", true},
		{"a_b_c", true},
		{"", false},
	}
	for _, tc := range tests {
		a := Account{ID: tc.id}
		if got := a.IsHolding(); got != tc.want {
			t.Errorf("IsHolding(%q) = %v want %v", tc.id, got, tc.want)
		}
	}
}

func TestAccountParent(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"inv1_aapl", "inv1"},
		{"a_b_c", "a"},
		{"inv1", ""},
	}
	for _, tc := range tests {
		a := Account{ID: tc.id}
		if got := a.Parent(); got != tc.want {
			t.Errorf("Parent(%q) = %q want %q", tc.id, got, tc.want)
		}
	}
}

func TestSnapshotDate(t *testing.T) {
	s := &PortfolioSnapshot{Timestamp: "2025-04-01T14:30:00Z"}
	on, err := s.Date()
	if err != nil {
		t.Fatalf("Date: %v", err)
	}
	if on != NewDate(2025, time.April, 1) {
		t.Errorf("Date = %v want 2025-04-01", on)
	}

	s = &PortfolioSnapshot{Timestamp: "when?"}
	if _, err := s.Date(); err == nil {
		t.Error("Date of malformed timestamp succeeded")
	}
}
