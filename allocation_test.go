package kubera

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		account Account
		want    Category
	}{
		// structured metadata wins regardless of name
		{Account{Name: "Weird Fund Name", SubType: "etf"}, Stocks},
		{Account{Name: "Anything", SubType: "bond"}, Bonds},
		{Account{Name: "My Wallet", SubType: "cryptocurrency"}, Crypto},
		{Account{Name: "Home", SubType: "primary residence"}, RealEstate},
		{Account{Name: "Savings", SubType: "cash"}, Cash},

		// funds: the name decides bond vs. stock, even when tagged etf
		{Account{Name: "Total Bond Market", SubType: "mutual fund"}, Bonds},
		{Account{Name: "Floating Rate Fund", AssetClass: "fund"}, Bonds},
		{Account{Name: "High Yld Muni", SubType: "mutual fund"}, Bonds},
		{Account{Name: "S&P 500 Index", SubType: "mutual fund"}, Stocks},

		// asset_class fallback
		{Account{Name: "Tesla", AssetClass: "stock"}, Stocks},
		{Account{Name: "ETH", AssetClass: "crypto"}, Crypto},

		// sheet and account_type fallbacks
		{Account{Name: "BTC", SheetName: "Crypto Holdings"}, Crypto},
		{Account{Name: "Rental", SheetName: "Real Estate"}, RealEstate},
		{Account{Name: "Condo", AccountType: "property"}, RealEstate},

		// pure legacy records with only a name and sheet
		{Account{Name: "Crypto Wallet"}, Crypto},
		{Account{Name: "Muni Bond Ladder"}, Bonds},
		{Account{Name: "Main Checking", SheetName: "Bank Accounts"}, Cash},
		{Account{Name: "Rollover IRA"}, Stocks},
		{Account{Name: "Taxable", SheetName: "Brokerage"}, Stocks},

		// nothing matches
		{Account{Name: "Pokemon Cards"}, Other},
	}
	for _, tc := range tests {
		if got := Classify(tc.account); got != tc.want {
			t.Errorf("Classify(%q sub_type=%q sheet=%q) = %q want %q",
				tc.account.Name, tc.account.SubType, tc.account.SheetName, got, tc.want)
		}
	}
}

func TestAllocation(t *testing.T) {
	on := NewDate(2025, time.April, 1)

	stock := acc("inv1_vti", "VTI", usd(60000))
	stock.SubType = "etf"
	bond := acc("inv1_bnd", "BND", usd(20000))
	bond.SubType = "bond"
	cash := acc("bank1", "Checking", usd(20000))
	cash.SubType = "cash"

	s := snap(on,
		acc("inv1", "Brokerage", usd(80000)), // parent, must not double count
		stock,
		bond,
		cash,
		acc("empty1", "Closed", usd(0)),
	)

	got := Allocation(s)

	want := map[Category]Percent{
		Stocks: 60,
		Bonds:  20,
		Cash:   20,
	}
	if len(got) != len(want) {
		t.Fatalf("Allocation = %v want %v", got, want)
	}
	var sum Percent
	for c, p := range want {
		if !got[c].Equal(p) {
			t.Errorf("Allocation[%s] = %v want %v", c, got[c], p)
		}
		sum += got[c]
	}
	if !sum.Equal(Percent(100)) {
		t.Errorf("allocation sums to %v want 100%%", sum)
	}
}

func TestAllocationSkipsDebts(t *testing.T) {
	on := NewDate(2025, time.April, 1)
	mortgage := Account{ID: "loan1", Name: "Mortgage", Value: usd(300000), Category: DebtAccount}

	s := snap(on,
		acc("bank1", "Checking", usd(10000)),
		mortgage,
	)

	got := Allocation(s)
	if len(got) != 1 || !got[Cash].Equal(Percent(100)) {
		t.Errorf("Allocation = %v want 100%% Cash", got)
	}
}

func TestAllocationEmpty(t *testing.T) {
	on := NewDate(2025, time.April, 1)
	s := snap(on, acc("empty1", "Closed", usd(0)))

	if got := Allocation(s); len(got) != 0 {
		t.Errorf("Allocation of empty snapshot = %v want empty", got)
	}
}
