package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// APInvoice is the database row of the ap_invoices table.
type APInvoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	SupplierID    string          `db:"supplier_id"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       *time.Time      `db:"due_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	AuditFields
}

// ARInvoice is the database row of the ar_invoices table.
type ARInvoice struct {
	InvoiceID     string          `db:"invoice_id"`
	InvoiceNumber string          `db:"invoice_number"`
	CustomerID    string          `db:"customer_id"`
	InvoiceDate   time.Time       `db:"invoice_date"`
	DueDate       *time.Time      `db:"due_date"`
	TotalAmount   decimal.Decimal `db:"total_amount"`
	Status        string          `db:"status"`
	AuditFields
}

// BankStatementLine is the database row of the bank_statement_lines table.
type BankStatementLine struct {
	LineID        string          `db:"line_id"`
	BankAccountID string          `db:"bank_account_id"`
	StatementDate time.Time       `db:"statement_date"`
	Reference     *string         `db:"reference"`
	Description   *string         `db:"description"`
	Amount        decimal.Decimal `db:"amount"`
	Reconciled    bool            `db:"reconciled"`
	AuditFields
}
