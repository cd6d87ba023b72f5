package dto

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAPInvoiceRequest records a supplier bill. Status defaults to DRAFT.
type CreateAPInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	SupplierID    string               `json:"supplierID" binding:"required"`
	InvoiceDate   time.Time            `json:"invoiceDate" binding:"required"`
	DueDate       *time.Time           `json:"dueDate"`
	TotalAmount   decimal.Decimal      `json:"totalAmount" binding:"dgte0,dscale"`
	Status        domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=DRAFT POSTED PAID"`
}

// CreateARInvoiceRequest records a customer invoice. Status defaults to DRAFT.
type CreateARInvoiceRequest struct {
	InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
	CustomerID    string               `json:"customerID" binding:"required"`
	InvoiceDate   time.Time            `json:"invoiceDate" binding:"required"`
	DueDate       *time.Time           `json:"dueDate"`
	TotalAmount   decimal.Decimal      `json:"totalAmount" binding:"dgte0,dscale"`
	Status        domain.InvoiceStatus `json:"status" binding:"omitempty,oneof=DRAFT POSTED PAID"`
}

// ListAPInvoicesResponse wraps a page of AP invoices.
type ListAPInvoicesResponse struct {
	Invoices []domain.APInvoice `json:"invoices"`
}

// ListARInvoicesResponse wraps a page of AR invoices.
type ListARInvoicesResponse struct {
	Invoices []domain.ARInvoice `json:"invoices"`
}

// CreateBankStatementLineRequest records one imported bank movement.
// Amount is signed: deposits positive, withdrawals negative.
type CreateBankStatementLineRequest struct {
	BankAccountID string          `json:"bankAccountID" binding:"required"`
	StatementDate time.Time       `json:"statementDate" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"dscale"`
	Reference     *string         `json:"reference"`
	Description   *string         `json:"description"`
}

// ListBankStatementLinesParams filters statement lines by bank account.
type ListBankStatementLinesParams struct {
	ListParams
	BankAccountID *string `form:"bankAccountID"`
}

// ListBankStatementLinesResponse wraps a page of statement lines.
type ListBankStatementLinesResponse struct {
	Lines []domain.BankStatementLine `json:"lines"`
}
