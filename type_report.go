package kubera

import (
	"fmt"
	"strings"
)

// ReportType is the cadence of a portfolio report.
type ReportType int

const (
	Daily ReportType = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (t ReportType) String() string {
	switch t {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Name returns the singular noun for the cadence (e.g., "day", "week", "month").
func (t ReportType) Name() string {
	switch t {
	case Daily:
		return "day"
	case Weekly:
		return "week"
	case Monthly:
		return "month"
	case Quarterly:
		return "quarter"
	case Yearly:
		return "year"
	default:
		return "period"
	}
}

// Subject returns the phrase used in report email subjects.
func (t ReportType) Subject() string {
	switch t {
	case Daily:
		return "balance activity"
	case Weekly:
		return "weekly summary"
	case Monthly:
		return "monthly summary"
	case Quarterly:
		return "quarterly summary"
	case Yearly:
		return "yearly summary"
	default:
		return "balance activity"
	}
}

func ParseReportType(s string) (ReportType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "daily", "day":
		return Daily, nil
	case "weekly", "week":
		return Weekly, nil
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown report type %s", s)
	}
}
