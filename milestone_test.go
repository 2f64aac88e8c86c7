package kubera

import (
	"testing"
	"time"
)

func TestMilestoneTypes(t *testing.T) {
	tests := []struct {
		on   Date
		want []ReportType
	}{
		// a plain Thursday: daily only
		{NewDate(2025, time.April, 3), []ReportType{Daily}},
		// a Monday
		{NewDate(2025, time.April, 7), []ReportType{Daily, Weekly}},
		// first of a non-quarter month, on a Tuesday
		{NewDate(2025, time.August, 1), []ReportType{Daily, Monthly}},
		// 2025-04-01 is a Tuesday and a quarter start
		{NewDate(2025, time.April, 1), []ReportType{Daily, Monthly, Quarterly}},
		// 2024-01-01 is a Monday: every cadence fires
		{NewDate(2024, time.January, 1), []ReportType{Daily, Weekly, Monthly, Quarterly, Yearly}},
		// a Jan 1 that is not a Monday
		{NewDate(2025, time.January, 1), []ReportType{Daily, Monthly, Quarterly, Yearly}},
	}
	for _, tc := range tests {
		got := MilestoneTypes(tc.on)
		if len(got) != len(tc.want) {
			t.Errorf("MilestoneTypes(%v) = %v want %v", tc.on, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("MilestoneTypes(%v) = %v want %v", tc.on, got, tc.want)
				break
			}
		}
	}
}

func TestIsMilestoneDate(t *testing.T) {
	tests := []struct {
		on   Date
		want bool
	}{
		{NewDate(2025, time.April, 7), true},   // Monday
		{NewDate(2025, time.April, 1), true},   // first of month
		{NewDate(2025, time.April, 3), false},  // plain Thursday
		{NewDate(2025, time.April, 30), false}, // last of month, Wednesday
	}
	for _, tc := range tests {
		if got := IsMilestoneDate(tc.on); got != tc.want {
			t.Errorf("IsMilestoneDate(%v) = %v want %v", tc.on, got, tc.want)
		}
	}
}

func TestComparisonDate(t *testing.T) {
	tests := []struct {
		on   Date
		t    ReportType
		want Date
	}{
		{NewDate(2025, time.April, 15), Daily, NewDate(2025, time.April, 14)},
		{NewDate(2025, time.March, 1), Daily, NewDate(2025, time.February, 28)},
		{NewDate(2025, time.April, 14), Weekly, NewDate(2025, time.April, 7)},
		{NewDate(2025, time.April, 1), Monthly, NewDate(2025, time.March, 1)},
		{NewDate(2025, time.April, 1), Quarterly, NewDate(2025, time.January, 1)},
		// year boundaries
		{NewDate(2025, time.January, 1), Monthly, NewDate(2024, time.December, 1)},
		{NewDate(2025, time.January, 1), Quarterly, NewDate(2024, time.October, 1)},
		{NewDate(2025, time.January, 1), Yearly, NewDate(2024, time.January, 1)},
		// mid-period dates anchor to the previous period start
		{NewDate(2025, time.August, 14), Quarterly, NewDate(2025, time.April, 1)},
		{NewDate(2025, time.August, 14), Yearly, NewDate(2024, time.January, 1)},
	}
	for _, tc := range tests {
		if got := ComparisonDate(tc.on, tc.t); got != tc.want {
			t.Errorf("ComparisonDate(%v, %v) = %v want %v", tc.on, tc.t, got, tc.want)
		}
	}
}
