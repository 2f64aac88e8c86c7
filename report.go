package kubera

// BuildReport assembles the report data for one cadence: it resolves the
// comparison baseline for the snapshot's date, loads it from the store, and
// computes the deltas. A missing baseline is not an error; the report simply
// carries no previous data and no change figures.
func BuildReport(store *SnapshotStore, current *PortfolioSnapshot, t ReportType) (*ReportData, error) {
	on, err := current.Date()
	if err != nil {
		return nil, err
	}

	previous, err := store.Load(ComparisonDate(on, t))
	if err != nil {
		return nil, err
	}
	return ComputeDeltas(current, previous), nil
}
