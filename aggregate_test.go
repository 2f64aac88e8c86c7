package kubera

import (
	"testing"
	"time"
)

func TestAggregate(t *testing.T) {
	on := NewDate(2025, time.April, 1)
	s := snap(on,
		acc("inv1", "Brokerage", usd(150000)),
		acc("inv1_aapl", "AAPL", usd(90000)),
		acc("inv1_msft", "MSFT", usd(60000)),
		acc("bank1", "Checking", usd(12000)),
		acc("empty1", "Closed Account", usd(0)),
	)

	agg := Aggregate(s)

	var ids []string
	for _, a := range agg.Accounts {
		ids = append(ids, a.ID)
	}
	want := []string{"inv1", "bank1"}
	if len(ids) != len(want) {
		t.Fatalf("aggregated ids = %v want %v", ids, want)
	}
	for i := range ids {
		if ids[i] != want[i] {
			t.Fatalf("aggregated ids = %v want %v", ids, want)
		}
	}

	// totals ride along unchanged
	if !agg.NetWorth.Equal(s.NetWorth) {
		t.Errorf("aggregated net worth = %v want %v", agg.NetWorth, s.NetWorth)
	}
}

func TestAggregateDoesNotMutate(t *testing.T) {
	on := NewDate(2025, time.April, 1)
	s := snap(on,
		acc("inv1", "Brokerage", usd(150000)),
		acc("inv1_aapl", "AAPL", usd(90000)),
	)

	_ = Aggregate(s)

	if len(s.Accounts) != 2 {
		t.Errorf("source snapshot mutated, accounts = %d want 2", len(s.Accounts))
	}
}

func TestAggregateIdempotent(t *testing.T) {
	on := NewDate(2025, time.April, 1)
	s := snap(on,
		acc("inv1", "Brokerage", usd(150000)),
		acc("inv1_aapl", "AAPL", usd(90000)),
		acc("bank1", "Checking", usd(12000)),
	)

	once := Aggregate(s)
	twice := Aggregate(&once.PortfolioSnapshot)
	if len(twice.Accounts) != len(once.Accounts) {
		t.Errorf("second aggregation changed account count: %d want %d",
			len(twice.Accounts), len(once.Accounts))
	}
}
