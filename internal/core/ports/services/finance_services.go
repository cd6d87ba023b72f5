package services

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
)

// InvoiceSvcFacade defines AP and AR invoice tracking. Invoices never post to the ledger.
type InvoiceSvcFacade interface {
	CreateAPInvoice(ctx context.Context, req dto.CreateAPInvoiceRequest, userID string) (*domain.APInvoice, error)
	ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error)
	CreateARInvoice(ctx context.Context, req dto.CreateARInvoiceRequest, userID string) (*domain.ARInvoice, error)
	ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error)
}

// BankStatementSvcFacade defines imported bank statement operations.
type BankStatementSvcFacade interface {
	CreateBankStatementLine(ctx context.Context, req dto.CreateBankStatementLineRequest, userID string) (*domain.BankStatementLine, error)
	ListBankStatementLines(ctx context.Context, bankAccountID *string, limit int, offset int) ([]domain.BankStatementLine, error)
}
