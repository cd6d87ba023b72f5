package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five chart-of-accounts types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// Account represents a ledger account with its running balance.
// Balance equals the sum of (debit - credit) over every posted journal line
// referencing the account.
type Account struct {
	AccountID   string          `json:"accountID"` // Primary Key (UUID)
	Code        string          `json:"code"`      // Unique chart-of-accounts code, e.g. "1001"
	Name        string          `json:"name"`
	AccountType AccountType     `json:"accountType"`
	Description string          `json:"description"`
	Balance     decimal.Decimal `json:"balance"`
	AuditFields
}
