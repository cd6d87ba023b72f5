package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BankStatementLine records a bank movement against the ledger account that
// represents the bank. Amount is positive for deposits, negative for withdrawals.
type BankStatementLine struct {
	LineID        string          `json:"lineID"`
	BankAccountID string          `json:"bankAccountID"`
	StatementDate time.Time       `json:"statementDate"`
	Reference     *string         `json:"reference,omitempty"`
	Description   *string         `json:"description,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Reconciled    bool            `json:"reconciled"`
	AuditFields
}
