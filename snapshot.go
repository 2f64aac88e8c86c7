package kubera

import (
	"fmt"
	"strings"
	"time"
)

// holdingSeparator splits a child holding id into its parent account id and
// the instrument part. A plain id denotes a parent or standalone account.
const holdingSeparator = "_"

// AccountCategory splits accounts between what is owned and what is owed.
type AccountCategory string

const (
	AssetAccount AccountCategory = "asset"
	DebtAccount  AccountCategory = "debt"
)

// Geography is the geographic classification of an asset, as delivered by the
// source system.
type Geography struct {
	Country string `json:"country"`
	Region  string `json:"region"`
}

// Account is a single balance line in a snapshot: either a parent/standalone
// account or a child holding inside one (see IsHolding).
//
// The classification metadata (SectionName, SubType, AssetClass, AccountType,
// Geography) is optional; snapshots written by older versions of the tool lack
// it and every consumer degrades gracefully without it.
type Account struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Institution string          `json:"institution,omitempty"`
	Value       Money           `json:"value"`
	Category    AccountCategory `json:"category"`
	SheetName   string          `json:"sheet_name"`
	SectionName string          `json:"section_name,omitempty"`
	SubType     string          `json:"sub_type,omitempty"`
	AssetClass  string          `json:"asset_class,omitempty"`
	AccountType string          `json:"account_type,omitempty"`
	Geography   *Geography      `json:"geography,omitempty"`
}

// IsHolding reports whether the account is a child holding of a parent account.
func (a Account) IsHolding() bool { return strings.Contains(a.ID, holdingSeparator) }

// Parent returns the id of the parent account for a child holding, or "" for a
// parent/standalone account.
func (a Account) Parent() string {
	parent, _, found := strings.Cut(a.ID, holdingSeparator)
	if !found {
		return ""
	}
	return parent
}

// PortfolioSnapshot is an immutable capture of all account balances at a point
// in time. Accounts contains both parent/standalone accounts and their child
// holdings interleaved, exactly as delivered by the source.
type PortfolioSnapshot struct {
	Timestamp     string    `json:"timestamp"` // RFC 3339, includes time of capture
	PortfolioID   string    `json:"portfolio_id"`
	PortfolioName string    `json:"portfolio_name"`
	Currency      string    `json:"currency"`
	NetWorth      Money     `json:"net_worth"`
	TotalAssets   Money     `json:"total_assets"`
	TotalDebts    Money     `json:"total_debts"`
	Accounts      []Account `json:"accounts"`
}

// Date returns the calendar date the snapshot was captured on. It is the key
// under which the snapshot is stored: one snapshot per calendar date.
func (s *PortfolioSnapshot) Date() (Date, error) {
	on, err := time.Parse(time.RFC3339, s.Timestamp)
	if err != nil {
		return Date{}, fmt.Errorf("invalid snapshot timestamp %q: %w", s.Timestamp, err)
	}
	return NewDate(on.Date()), nil
}
