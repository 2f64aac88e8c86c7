package kubera

import (
	"testing"
	"time"
)

func TestPruneCandidates(t *testing.T) {
	today := NewDate(2025, time.August, 14) // a Thursday

	all := []Date{
		today,
		today.Add(-1),
		NewDate(2025, time.August, 7),  // Thursday, within retention
		NewDate(2025, time.April, 3),   // Thursday, long past retention
		NewDate(2025, time.April, 7),   // Monday, past retention but a milestone
		NewDate(2025, time.April, 1),   // first of month, past retention
		NewDate(2024, time.January, 1), // ancient, but Jan 1
		NewDate(2025, time.May, 8),     // Thursday, past retention
	}

	got := PruneCandidates(all, today, DefaultRetentionDays)
	want := []Date{
		NewDate(2025, time.April, 3),
		NewDate(2025, time.May, 8),
	}
	if len(got) != len(want) {
		t.Fatalf("PruneCandidates = %v want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("PruneCandidates = %v want %v", got, want)
		}
	}
}

func TestPruneCandidatesProtectsRecentDates(t *testing.T) {
	today := NewDate(2025, time.August, 14)
	yesterday := today.Add(-1)

	// even with a zero-day window, today and yesterday survive
	got := PruneCandidates([]Date{today, yesterday}, today, 0)
	if len(got) != 0 {
		t.Errorf("PruneCandidates with retention 0 = %v want none", got)
	}
}

func TestPruneCandidatesNeverPrunesMilestones(t *testing.T) {
	today := NewDate(2025, time.August, 14)

	milestones := []Date{
		NewDate(2020, time.March, 2),   // a Monday from years back
		NewDate(2021, time.June, 1),    // first of month
		NewDate(2019, time.October, 1), // quarter start
	}
	if got := PruneCandidates(milestones, today, 1); len(got) != 0 {
		t.Errorf("PruneCandidates pruned milestone dates: %v", got)
	}
}
