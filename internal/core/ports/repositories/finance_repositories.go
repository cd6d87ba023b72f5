package repositories

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
)

// InvoiceRepositoryFacade defines persistence for AP and AR invoices.
// Invoices are plain records and never touch the ledger.
type InvoiceRepositoryFacade interface {
	SaveAPInvoice(ctx context.Context, invoice domain.APInvoice) error
	ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error)
	SaveARInvoice(ctx context.Context, invoice domain.ARInvoice) error
	ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error)
}

// BankStatementRepositoryFacade defines persistence for imported bank statement lines.
type BankStatementRepositoryFacade interface {
	SaveBankStatementLine(ctx context.Context, line domain.BankStatementLine) error

	// ListBankStatementLines lists lines, optionally restricted to one bank account.
	ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error)
}
