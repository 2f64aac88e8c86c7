package kubera

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Category is an asset-allocation bucket.
type Category string

const (
	Stocks     Category = "Stocks"
	Bonds      Category = "Bonds"
	Crypto     Category = "Crypto"
	RealEstate Category = "Real Estate"
	Cash       Category = "Cash"
	Other      Category = "Other"
)

// Categories lists every allocation bucket, in display order.
var Categories = []Category{Stocks, Bonds, Crypto, RealEstate, Cash, Other}

// subTypeCategories maps normalized source metadata (sub_type or asset_class)
// straight to a bucket.
var subTypeCategories = map[string]Category{
	"stock":               Stocks,
	"etf":                 Stocks,
	"bond":                Bonds,
	"cash":                Cash,
	"crypto":              Crypto,
	"cryptocurrency":      Crypto,
	"real estate":         RealEstate,
	"property":            RealEstate,
	"primary residence":   RealEstate,
	"investment property": RealEstate,
}

// bondFundKeywords are name fragments that mark a fund as bond-heavy rather
// than stock-heavy.
var bondFundKeywords = []string{
	"bond",
	"fixed income",
	"yield",
	"yld", // abbreviated yield
	"floating rate",
	"floating-rate",
	"high income",
	"high-income",
	"high-inc",
	"income fund",
	"income builder",
	"mortgage",
	"treasury",
	"municipal",
	"corporate debt",
	"balanced income", // balanced funds with "income" are typically bond-heavy
}

// accountFacts is an account's classification metadata, normalized to lower
// case once so every rule can match on it cheaply. Fields missing from old
// snapshots normalize to "".
type accountFacts struct {
	subType     string
	assetClass  string
	accountType string
	sheet       string
	name        string
}

func factsOf(a Account) accountFacts {
	return accountFacts{
		subType:     strings.ToLower(a.SubType),
		assetClass:  strings.ToLower(a.AssetClass),
		accountType: strings.ToLower(a.AccountType),
		sheet:       strings.ToLower(a.SheetName),
		name:        strings.ToLower(a.Name),
	}
}

// An allocationRule classifies an account, or declines to.
type allocationRule struct {
	name     string
	classify func(accountFacts) (Category, bool)
}

// allocationRules is the classification cascade, evaluated in order with the
// first match winning. The early rules read structured metadata; the late ones
// are degraded fallbacks for older or manually-entered records that lack it.
// The fund rule runs before the plain sub_type lookup so that a fund flagged
// "etf" but named like a bond fund still lands in Bonds.
var allocationRules = []allocationRule{
	{"fund", func(f accountFacts) (Category, bool) {
		// Mutual funds carry no useful sub_type; the name decides
		// between bond funds and everything else.
		if f.subType != "mutual fund" && f.assetClass != "fund" {
			return "", false
		}
		for _, kw := range bondFundKeywords {
			if strings.Contains(f.name, kw) {
				return Bonds, true
			}
		}
		return Stocks, true
	}},
	{"sub_type", func(f accountFacts) (Category, bool) {
		c, ok := subTypeCategories[f.subType]
		return c, ok
	}},
	{"asset_class", func(f accountFacts) (Category, bool) {
		c, ok := subTypeCategories[f.assetClass]
		return c, ok
	}},
	{"asset_class_kind", func(f accountFacts) (Category, bool) {
		switch f.assetClass {
		case "stock":
			return Stocks, true
		case "crypto":
			return Crypto, true
		}
		return "", false
	}},
	{"sheet", func(f accountFacts) (Category, bool) {
		if strings.Contains(f.sheet, "crypto") {
			return Crypto, true
		}
		if strings.Contains(f.sheet, "real estate") || f.accountType == "property" {
			return RealEstate, true
		}
		return "", false
	}},
	{"legacy_name", func(f accountFacts) (Category, bool) {
		// Backward compatibility for snapshots without structured metadata.
		switch {
		case strings.Contains(f.name, "crypto"):
			return Crypto, true
		case strings.Contains(f.name, "bond"):
			return Bonds, true
		case strings.Contains(f.sheet, "real estate") || strings.Contains(f.sheet, "property"):
			return RealEstate, true
		case strings.Contains(f.sheet, "bank") ||
			strings.Contains(f.name, "cash") ||
			strings.Contains(f.name, "checking") ||
			strings.Contains(f.name, "savings"):
			return Cash, true
		}
		for _, kw := range []string{"investment", "brokerage", "ira", "401k", "stock", "equity"} {
			if strings.Contains(f.sheet, kw) || strings.Contains(f.name, kw) {
				return Stocks, true
			}
		}
		return "", false
	}},
}

// Classify runs the cascade on one account and returns its bucket.
func Classify(a Account) Category {
	facts := factsOf(a)
	for _, rule := range allocationRules {
		if c, ok := rule.classify(facts); ok {
			return c
		}
	}
	return Other
}

// Allocation computes the asset-allocation breakdown of a snapshot, in percent
// of the classified total. It needs the unaggregated snapshot: classification
// works on leaf holdings and standalone accounts, and skips parent accounts
// whose children are present to avoid counting a total and its parts twice.
// Zero-valued accounts are skipped; buckets that end up empty are omitted; the
// result is empty when nothing classifies to a positive total.
func Allocation(s *PortfolioSnapshot) map[Category]Percent {
	// Parents that have at least one asset child holding in this snapshot.
	hasChildren := make(map[string]bool)
	for _, a := range s.Accounts {
		if a.Category != AssetAccount {
			continue
		}
		if parent := a.Parent(); parent != "" {
			hasChildren[parent] = true
		}
	}

	totals := make(map[Category]decimal.Decimal)
	total := decimal.Zero
	for _, a := range s.Accounts {
		if a.Category != AssetAccount {
			continue
		}
		if !a.IsHolding() && hasChildren[a.ID] {
			continue
		}
		if a.Value.IsZero() {
			continue
		}
		c := Classify(a)
		totals[c] = totals[c].Add(a.Value.value)
		total = total.Add(a.Value.value)
	}

	if !total.IsPositive() {
		return map[Category]Percent{}
	}

	allocation := make(map[Category]Percent, len(totals))
	for c, v := range totals {
		if v.IsPositive() {
			allocation[c] = Percent(v.Div(total).InexactFloat64() * 100)
		}
	}
	return allocation
}
