package insight

import (
	"fmt"
	"strings"
	"testing"

	kubera "github.com/the-mace/kubera-reporting"
)

func usd(v float64) kubera.Money { return kubera.M(v, "USD") }

func testData(t *testing.T, accounts int) *kubera.ReportData {
	t.Helper()
	cur := &kubera.PortfolioSnapshot{
		Timestamp: "2025-04-01T14:30:00Z",
		Currency:  "USD",
	}
	prev := &kubera.PortfolioSnapshot{
		Timestamp: "2025-03-31T14:30:00Z",
		Currency:  "USD",
	}
	for i := 0; i < accounts; i++ {
		id := fmt.Sprintf("a%d", i)
		prev.Accounts = append(prev.Accounts, kubera.Account{
			ID: id, Name: "Account " + id, Value: usd(1000), Category: kubera.AssetAccount,
		})
		cur.Accounts = append(cur.Accounts, kubera.Account{
			ID: id, Name: "Account " + id, Value: usd(1000 + float64(i)), Category: kubera.AssetAccount,
		})
	}
	cur.NetWorth = usd(float64(accounts) * 1000)
	prev.NetWorth = usd(float64(accounts) * 1000)
	return kubera.ComputeDeltas(cur, prev)
}

func TestMoversOfCapsTheList(t *testing.T) {
	data := testData(t, 15)
	if got := len(moversOf(data.AssetChanges)); got != topMovers {
		t.Errorf("moversOf returned %d movers want %d", got, topMovers)
	}

	data = testData(t, 3)
	if got := len(moversOf(data.AssetChanges)); got != 3 {
		t.Errorf("moversOf returned %d movers want 3", got)
	}
}

func TestSummaryPromptHideAmounts(t *testing.T) {
	data := testData(t, 2)

	open := summaryPrompt(data, kubera.Daily, false)
	if !strings.Contains(open, "Format amounts without decimals") {
		t.Errorf("plain prompt missing amount formatting rule:\n%s", open)
	}

	hidden := summaryPrompt(data, kubera.Daily, true)
	if !strings.Contains(hidden, "Do NOT mention specific amounts") {
		t.Errorf("hidden prompt missing the no-amounts rule:\n%s", hidden)
	}
	if strings.Contains(hidden, "Format amounts without decimals") {
		t.Errorf("hidden prompt still carries amount formatting:\n%s", hidden)
	}
}

func TestSummaryPromptCadence(t *testing.T) {
	data := testData(t, 1)
	p := summaryPrompt(data, kubera.Quarterly, false)
	if !strings.Contains(p, "quarterly portfolio report") {
		t.Errorf("prompt missing cadence:\n%s", p)
	}
	if !strings.Contains(p, `"top_dollar_movers"`) {
		t.Errorf("prompt missing movers data:\n%s", p)
	}
}

func TestQueryPrompt(t *testing.T) {
	data := testData(t, 2)
	p := queryPrompt(data.CurrentUnaggregated, data, "how is my cash doing?")

	if !strings.Contains(p, "User question: how is my cash doing?") {
		t.Errorf("prompt missing the question:\n%s", p)
	}
	if !strings.Contains(p, "Net worth change:") {
		t.Errorf("prompt missing the change summary:\n%s", p)
	}
}
