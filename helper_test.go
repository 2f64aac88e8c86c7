package kubera

// helpers shared across tests in this package.

// usd is a terse Money constructor for tests.
func usd(v float64) Money { return M(v, "USD") }

// acc builds a minimal asset account.
func acc(id, name string, value Money) Account {
	return Account{
		ID:       id,
		Name:     name,
		Value:    value,
		Category: AssetAccount,
	}
}

// snap builds a snapshot for the given date with the given accounts,
// recomputing the totals the way the upstream API reports them.
func snap(on Date, accounts ...Account) *PortfolioSnapshot {
	var assets, debts Money
	for _, a := range accounts {
		if a.Category == DebtAccount {
			debts = debts.Add(a.Value)
		} else if !a.IsHolding() {
			assets = assets.Add(a.Value)
		}
	}
	return &PortfolioSnapshot{
		Timestamp:     on.time().Format("2006-01-02T15:04:05Z07:00"),
		PortfolioID:   "p1",
		PortfolioName: "Main",
		Currency:      "USD",
		NetWorth:      assets.Sub(debts),
		TotalAssets:   assets,
		TotalDebts:    debts,
		Accounts:      accounts,
	}
}
