package kubera

// AggregatedSnapshot is a snapshot reduced to parent and standalone accounts,
// the view delta computation and reports work on. It is a distinct type so a
// call site cannot hand an aggregated snapshot to a consumer that needs the
// raw holding-level view (the allocation classifier does).
type AggregatedSnapshot struct {
	PortfolioSnapshot
}

// Aggregate collapses the raw account list to parent and standalone accounts,
// dropping child holdings and zero-valued records. The input snapshot is not
// modified: the unaggregated view keeps the holding-level detail the
// allocation classifier needs.
func Aggregate(s *PortfolioSnapshot) *AggregatedSnapshot {
	accounts := make([]Account, 0, len(s.Accounts))
	for _, a := range s.Accounts {
		if a.IsHolding() {
			continue
		}
		if a.Value.IsZero() {
			continue
		}
		accounts = append(accounts, a)
	}

	agg := &AggregatedSnapshot{PortfolioSnapshot: *s}
	agg.Accounts = accounts
	return agg
}
