package kubera

import "time"

// This file decides which report cadences a calendar date triggers, and which
// historical date each cadence compares against. All functions are pure: the
// date is always a parameter, never read from the clock.

// MilestoneTypes returns the report cadences that apply to the given date, in
// Daily, Weekly, Monthly, Quarterly, Yearly order. Daily always applies; the
// others are cumulative, a single date can trigger several.
func MilestoneTypes(on Date) []ReportType {
	types := []ReportType{Daily}

	if on.Weekday() == time.Monday {
		types = append(types, Weekly)
	}
	if on.Day() == 1 {
		types = append(types, Monthly)
		if isQuarterStartMonth(on.Month()) {
			types = append(types, Quarterly)
		}
		if on.Month() == time.January {
			types = append(types, Yearly)
		}
	}
	return types
}

// IsMilestoneDate reports whether the date is preserved forever by the
// retention policy: a Monday or a first of month (which covers quarter and
// year starts).
func IsMilestoneDate(on Date) bool {
	return on.Weekday() == time.Monday || on.Day() == 1
}

// ComparisonDate resolves the calendar date of the snapshot that serves as the
// "previous" baseline for a report of the given cadence. It is calendar
// arithmetic only; whether a snapshot actually exists on that date is the
// store's business, and a missing baseline is an expected outcome.
func ComparisonDate(on Date, t ReportType) Date {
	switch t {
	case Daily:
		return on.Add(-1)
	case Weekly:
		return on.Add(-7)
	case Monthly:
		// first day of the previous calendar month, December of the
		// previous year when on is in January.
		return NewDate(on.Year(), on.Month()-1, 1)
	case Quarterly:
		// first day of the quarter before the one containing on;
		// Q1 resolves to October 1 of the previous year.
		start := on.StartOf(Quarterly)
		return NewDate(start.Year(), start.Month()-3, 1)
	case Yearly:
		return NewDate(on.Year()-1, time.January, 1)
	default:
		panic("unknown report type")
	}
}

func isQuarterStartMonth(m time.Month) bool {
	switch m {
	case time.January, time.April, time.July, time.October:
		return true
	}
	return false
}
