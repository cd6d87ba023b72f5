package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle status shared by AP and AR invoices.
type InvoiceStatus string

const (
	InvoiceDraft  InvoiceStatus = "DRAFT"
	InvoicePosted InvoiceStatus = "POSTED"
	InvoicePaid   InvoiceStatus = "PAID"
)

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoicePosted, InvoicePaid:
		return true
	}
	return false
}

// APInvoice is a supplier bill. It never posts to the ledger.
type APInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	SupplierID    string          `json:"supplierID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
}

// ARInvoice is a customer invoice. It never posts to the ledger.
type ARInvoice struct {
	InvoiceID     string          `json:"invoiceID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	CustomerID    string          `json:"customerID"`
	InvoiceDate   time.Time       `json:"invoiceDate"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        InvoiceStatus   `json:"status"`
	AuditFields
}
