package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	kubera "github.com/the-mace/kubera-reporting"
)

// topMovers is how many account deltas each list contributes to a prompt.
// Enough for the narrative, small enough to keep the prompt cheap.
const topMovers = 10

// mover is the compact delta shape handed to the model.
type mover struct {
	Name          string          `json:"name"`
	Sheet         string          `json:"sheet,omitempty"`
	IsHolding     bool            `json:"is_holding,omitempty"`
	Change        float64         `json:"change"`
	ChangePercent *kubera.Percent `json:"change_percent,omitempty"`
}

func moversOf(deltas []kubera.AccountDelta) []mover {
	n := min(len(deltas), topMovers)
	movers := make([]mover, 0, n)
	for _, d := range deltas[:n] {
		movers = append(movers, mover{
			Name:          d.Name,
			Sheet:         d.SheetName,
			IsHolding:     strings.Contains(d.ID, "_"),
			Change:        d.Change.AsFloat(),
			ChangePercent: d.ChangePercent,
		})
	}
	return movers
}

func summaryPrompt(data *kubera.ReportData, t kubera.ReportType, hideAmounts bool) string {
	facts := map[string]any{
		"net_worth_change":         data.NetWorthChange,
		"net_worth_change_percent": data.NetWorthChangePercent,
		"top_dollar_movers":        moversOf(data.AssetChanges),
		"top_debt_movers":          moversOf(data.DebtChanges),
	}
	blob, _ := json.MarshalIndent(facts, "", "  ")

	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this %s portfolio report (currency: %s).\n\n", t.String(), data.Current.Currency)
	b.WriteString("Format your response as:\n")
	b.WriteString("1. First sentence: overall net worth change summary\n")
	b.WriteString("2. Blank line\n")
	b.WriteString("3. \"Key drivers:\" followed by bullet points for the biggest movers\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Use exact names from the data\n")
	if hideAmounts {
		b.WriteString("- Do NOT mention specific amounts, use only percentages\n")
	} else {
		b.WriteString("- Format amounts without decimals, percentages with 2 decimal places\n")
	}
	b.WriteString("- \"is_holding\": true means an individual instrument inside a larger account\n")
	b.WriteString("- Do NOT suggest actions or what to watch\n")
	b.WriteString("- ONLY use the data provided, do not infer\n")
	b.WriteString("- Keep it factual and concise\n\n")
	b.WriteString("Portfolio data:\n")
	b.Write(blob)
	return b.String()
}

func queryPrompt(snapshot *kubera.PortfolioSnapshot, data *kubera.ReportData, question string) string {
	var b strings.Builder
	b.WriteString("You are a financial advisor analyzing portfolio data.\n")
	b.WriteString("You have access to current and historical portfolio information.\n\n")

	b.WriteString("Current portfolio data:\n")
	blob, _ := json.MarshalIndent(snapshot, "", "  ")
	b.Write(blob)
	b.WriteString("\n")

	if data != nil && data.Previous != nil {
		fmt.Fprintf(&b, "\nNet worth change: %v\n", data.NetWorthChange)
		fmt.Fprintf(&b, "\nTop asset changes (%d total):\n", len(data.AssetChanges))
		blob, _ = json.MarshalIndent(moversOf(data.AssetChanges), "", "  ")
		b.Write(blob)
		fmt.Fprintf(&b, "\n\nTop debt changes (%d total):\n", len(data.DebtChanges))
		blob, _ = json.MarshalIndent(moversOf(data.DebtChanges), "", "  ")
		b.Write(blob)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nUser question: %s\n\n", question)
	b.WriteString("Provide a clear, helpful answer based on the portfolio data provided.\n")
	b.WriteString("Include specific numbers and percentages where relevant.\n")
	return b.String()
}
