package kuberaapi

import (
	"context"
	"fmt"
	"time"

	kubera "github.com/the-mace/kubera-reporting"
)

// Portfolio is one entry of the portfolio listing.
type Portfolio struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// Portfolios lists the portfolios visible to the API key.
func (c *Client) Portfolios(ctx context.Context) ([]Portfolio, error) {
	var list []Portfolio
	if err := c.get(ctx, "/api/v3/data/portfolio", &list); err != nil {
		return nil, err
	}
	return list, nil
}

// jvalue is the API money shape.
type jvalue struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// jaccount is one raw asset or debt line as the API delivers it.
type jaccount struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Value       jvalue  `json:"value"`
	SheetName   string  `json:"sheetName"`
	SectionName string  `json:"sectionName"`
	SubType     string  `json:"subType"`
	AssetClass  string  `json:"assetClass"`
	Type        string  `json:"type"`
	Geography   *struct {
		Country string `json:"country"`
		Region  string `json:"region"`
	} `json:"geography"`
	Connection *struct {
		ProviderName string `json:"providerName"`
	} `json:"connection"`
}

// jportfolio is the detailed portfolio payload. The API has delivered both
// camelCase and snake_case keys over time, so both variants decode.
type jportfolio struct {
	Assets      []jaccount `json:"asset"`
	AltAssets   []jaccount `json:"assets"`
	Debts       []jaccount `json:"debt"`
	AltDebts    []jaccount `json:"debts"`
	NetWorth    float64    `json:"netWorth"`
	AltNetWorth float64    `json:"net_worth"`
	AssetTtl    float64    `json:"assetTotal"`
	AltAssetTtl float64    `json:"asset_total"`
	DebtTtl     float64    `json:"debtTotal"`
	AltDebtTtl  float64    `json:"debt_total"`
}

// normalize folds the alternate keys into the primary fields, preferring the
// populated one.
func (p *jportfolio) normalize() {
	if len(p.Assets) == 0 {
		p.Assets = p.AltAssets
	}
	if len(p.Debts) == 0 {
		p.Debts = p.AltDebts
	}
	if p.NetWorth == 0 {
		p.NetWorth = p.AltNetWorth
	}
	if p.AssetTtl == 0 {
		p.AssetTtl = p.AltAssetTtl
	}
	if p.DebtTtl == 0 {
		p.DebtTtl = p.AltDebtTtl
	}
}

// FetchSnapshot fetches a full portfolio snapshot, timestamped now. When
// portfolioID is empty the first portfolio is used.
func (c *Client) FetchSnapshot(ctx context.Context, portfolioID string) (*kubera.PortfolioSnapshot, error) {
	portfolios, err := c.Portfolios(ctx)
	if err != nil {
		return nil, err
	}
	if len(portfolios) == 0 {
		return nil, fmt.Errorf("kubera api: no portfolios found")
	}

	var info *Portfolio
	if portfolioID == "" {
		info = &portfolios[0]
	} else {
		for i := range portfolios {
			if portfolios[i].ID == portfolioID {
				info = &portfolios[i]
				break
			}
		}
	}
	if info == nil {
		return nil, fmt.Errorf("kubera api: portfolio %q not found", portfolioID)
	}

	var detail jportfolio
	if err := c.get(ctx, "/api/v3/data/portfolio/"+info.ID, &detail); err != nil {
		return nil, err
	}
	detail.normalize()

	currency := info.Currency
	if currency == "" {
		currency = "USD"
	}

	accounts := make([]kubera.Account, 0, len(detail.Assets)+len(detail.Debts))
	for _, a := range detail.Assets {
		accounts = append(accounts, newAccount(a, kubera.AssetAccount))
	}
	for _, d := range detail.Debts {
		accounts = append(accounts, newAccount(d, kubera.DebtAccount))
	}

	return &kubera.PortfolioSnapshot{
		Timestamp:     c.now().UTC().Format(time.RFC3339),
		PortfolioID:   info.ID,
		PortfolioName: info.Name,
		Currency:      currency,
		NetWorth:      kubera.M(detail.NetWorth, currency),
		TotalAssets:   kubera.M(detail.AssetTtl, currency),
		TotalDebts:    kubera.M(detail.DebtTtl, currency),
		Accounts:      accounts,
	}, nil
}

// newAccount keeps all the raw metadata: old snapshots without it must stay
// readable, new ones should carry everything the classifier can use.
func newAccount(j jaccount, category kubera.AccountCategory) kubera.Account {
	a := kubera.Account{
		ID:          j.ID,
		Name:        j.Name,
		Value:       kubera.M(j.Value.Amount, j.Value.Currency),
		Category:    category,
		SheetName:   j.SheetName,
		SectionName: j.SectionName,
		SubType:     j.SubType,
		AssetClass:  j.AssetClass,
		AccountType: j.Type,
	}
	if j.Connection != nil {
		a.Institution = j.Connection.ProviderName
	}
	if j.Geography != nil {
		a.Geography = &kubera.Geography{Country: j.Geography.Country, Region: j.Geography.Region}
	}
	return a
}
