package models

import (
	"github.com/shopspring/decimal"
)

// Account is the database row of the accounts table.
type Account struct {
	AccountID   string          `db:"account_id"`
	Code        string          `db:"code"`
	Name        string          `db:"name"`
	AccountType string          `db:"account_type"`
	Description string          `db:"description"`
	Balance     decimal.Decimal `db:"balance"`
	AuditFields
}
