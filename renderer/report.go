// Package renderer renders report data as markdown. Presentation only: every
// figure is computed upstream.
package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	kubera "github.com/the-mace/kubera-reporting"
)

// ReportMarkdown renders a full portfolio report: net worth headline, top
// movers, and the allocation breakdown when one is provided.
func ReportMarkdown(data *kubera.ReportData, allocation map[kubera.Category]kubera.Percent, t kubera.ReportType) string {
	var b strings.Builder

	renderHeadline(&b, data, t)
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMovers(w, "Assets", data.AssetChanges) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderMovers(w, "Debts", data.DebtChanges) })
	ConditionalBlock(&b, func(w io.Writer) bool { return renderAllocation(w, allocation) })

	return b.String()
}

func renderHeadline(w io.Writer, data *kubera.ReportData, t kubera.ReportType) {
	title := capitalize(t.String())
	fmt.Fprintf(w, "# %s report — %s\n\n", title, data.Current.PortfolioName)

	if on, err := data.Current.Date(); err == nil {
		fmt.Fprintf(w, "%s\n\n", on.Format("Monday, January 2, 2006"))
	}

	fmt.Fprintf(w, "**Net worth**: %s", data.Current.NetWorth)
	if data.NetWorthChange != nil {
		fmt.Fprintf(w, " (%s", data.NetWorthChange.SignedString())
		if data.NetWorthChangePercent != nil {
			fmt.Fprintf(w, ", %s", data.NetWorthChangePercent.SignedString())
		}
		fmt.Fprintf(w, " over the last %s)", t.Name())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Assets %s | Debts %s\n\n", data.Current.TotalAssets, data.Current.TotalDebts)

	if data.Previous == nil {
		fmt.Fprintf(w, "No comparison snapshot available for this %s.\n\n", t.Name())
	}
}

// renderMovers writes the per-account change table, biggest movers first (the
// list is already sorted upstream).
func renderMovers(w io.Writer, title string, deltas []kubera.AccountDelta) bool {
	if len(deltas) == 0 {
		return false
	}

	fmt.Fprintf(w, "## %s\n\n", title)
	fmt.Fprintln(w, "| Account | Value | Change | % |")
	fmt.Fprintln(w, "|---|--:|--:|--:|")
	for _, d := range deltas {
		pct := "-"
		if d.ChangePercent != nil {
			pct = d.ChangePercent.SignedString()
		}
		name := d.Name
		if d.Institution != "" {
			name = fmt.Sprintf("%s (%s)", d.Name, d.Institution)
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n", name, d.CurrentValue, d.Change.SignedString(), pct)
	}
	fmt.Fprintln(w)
	return true
}

func renderAllocation(w io.Writer, allocation map[kubera.Category]kubera.Percent) bool {
	if len(allocation) == 0 {
		return false
	}

	// largest share first
	categories := make([]kubera.Category, 0, len(allocation))
	for c := range allocation {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return allocation[categories[i]] > allocation[categories[j]] })

	fmt.Fprintln(w, "## Asset allocation")
	fmt.Fprintln(w)
	for _, c := range categories {
		fmt.Fprintf(w, "- %s: %s\n", c, allocation[c])
	}
	fmt.Fprintln(w)
	return true
}
