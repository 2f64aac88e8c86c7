package kubera

// DefaultRetentionDays is the window during which every daily snapshot is
// kept, milestone or not.
const DefaultRetentionDays = 60

// PruneCandidates returns the subset of dates that are safe to delete. It
// keeps unconditionally:
//   - today and yesterday,
//   - any date within retentionDays of today,
//   - any milestone date (Monday or first of month), indefinitely.
//
// Everything else is dense non-milestone history old enough to drop. The
// milestone rule preserves one data point per week and per month forever, so
// long-cadence comparisons keep finding their baselines.
func PruneCandidates(all []Date, today Date, retentionDays int) []Date {
	cutoff := today.Add(-retentionDays)

	var candidates []Date
	for _, on := range all {
		if on == today || on == today.Add(-1) {
			continue
		}
		if !on.Before(cutoff) {
			continue
		}
		if IsMilestoneDate(on) {
			continue
		}
		candidates = append(candidates, on)
	}
	return candidates
}
