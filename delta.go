package kubera

import (
	"math"
	"sort"
)

// AccountDelta is the change in one account's value between two snapshots.
type AccountDelta struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution,omitempty"`
	Category    AccountCategory `json:"category"`
	SheetName   string          `json:"sheet_name"`
	SectionName string          `json:"section_name,omitempty"`
	SubType     string          `json:"sub_type,omitempty"`
	AssetClass  string          `json:"asset_class,omitempty"`
	AccountType string          `json:"account_type,omitempty"`
	Geography   *Geography      `json:"geography,omitempty"`

	CurrentValue  Money    `json:"current_value"`
	PreviousValue Money    `json:"previous_value"` // zero-valued when the account is new
	Change        Money    `json:"change"`
	ChangePercent *Percent `json:"change_percent"` // nil when the previous amount is zero or the account is new
}

// ReportData is everything a report of one cadence needs. It is derived on
// demand and never persisted.
type ReportData struct {
	Current             *AggregatedSnapshot `json:"current"`
	CurrentUnaggregated *PortfolioSnapshot  `json:"current_unaggregated"`
	Previous            *AggregatedSnapshot `json:"previous"`

	NetWorthChange        *Money   `json:"net_worth_change"`
	NetWorthChangePercent *Percent `json:"net_worth_change_percent"`

	// Sorted by absolute change, largest first.
	AssetChanges []AccountDelta `json:"asset_changes"`
	DebtChanges  []AccountDelta `json:"debt_changes"`
}

// ComputeDeltas compares the current snapshot against a previous one (nil when
// no baseline exists) and returns the per-account and portfolio-level changes.
//
// Accounts present only in previous produce no delta. That asymmetry is kept
// on purpose: a disappeared account usually means the aggregator dropped a
// connection, and surfacing it as a full negative swing would be misleading.
func ComputeDeltas(current, previous *PortfolioSnapshot) *ReportData {
	data := &ReportData{
		Current:             Aggregate(current),
		CurrentUnaggregated: current,
	}
	if previous != nil {
		data.Previous = Aggregate(previous)

		change := data.Current.NetWorth.Sub(data.Previous.NetWorth)
		data.NetWorthChange = &change
		if !data.Previous.NetWorth.IsZero() {
			pct := percentOf(change, data.Previous.NetWorth)
			data.NetWorthChangePercent = &pct
		}
	}

	prevAccounts := make(map[string]Account)
	if data.Previous != nil {
		for _, a := range data.Previous.Accounts {
			prevAccounts[a.ID] = a
		}
	}

	for _, a := range data.Current.Accounts {
		delta := AccountDelta{
			ID:          a.ID,
			Name:        a.Name,
			Institution: a.Institution,
			Category:    a.Category,
			SheetName:   a.SheetName,
			SectionName: a.SectionName,
			SubType:     a.SubType,
			AssetClass:  a.AssetClass,
			AccountType: a.AccountType,
			Geography:   a.Geography,

			CurrentValue: a.Value,
		}

		if prev, ok := prevAccounts[a.ID]; ok {
			delta.PreviousValue = prev.Value
			delta.Change = a.Value.Sub(prev.Value)
			if !prev.Value.IsZero() {
				pct := percentOf(delta.Change, prev.Value)
				delta.ChangePercent = &pct
			}
		} else {
			// New account: the whole value is the change, and there is
			// no defined percent change (not zero).
			delta.PreviousValue = M(0, current.Currency)
			delta.Change = a.Value
		}

		switch a.Category {
		case AssetAccount:
			data.AssetChanges = append(data.AssetChanges, delta)
		default:
			data.DebtChanges = append(data.DebtChanges, delta)
		}
	}

	sortByAbsChange(data.AssetChanges)
	sortByAbsChange(data.DebtChanges)

	return data
}

// percentOf returns change relative to base, in percent of |base|.
func percentOf(change, base Money) Percent {
	return Percent(change.AsFloat() / math.Abs(base.AsFloat()) * 100)
}

// sortByAbsChange orders the top movers: largest absolute change first, ties
// keep their original order.
func sortByAbsChange(deltas []AccountDelta) {
	sort.SliceStable(deltas, func(i, j int) bool {
		return deltas[i].Change.Abs().GreaterThan(deltas[j].Change.Abs())
	})
}
