package mapping

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

// ToDomainAPInvoice converts a model APInvoice to a domain APInvoice
func ToDomainAPInvoice(m models.APInvoice) domain.APInvoice {
	return domain.APInvoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		SupplierID:    m.SupplierID,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		TotalAmount:   m.TotalAmount,
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainARInvoice converts a model ARInvoice to a domain ARInvoice
func ToDomainARInvoice(m models.ARInvoice) domain.ARInvoice {
	return domain.ARInvoice{
		InvoiceID:     m.InvoiceID,
		InvoiceNumber: m.InvoiceNumber,
		CustomerID:    m.CustomerID,
		InvoiceDate:   m.InvoiceDate,
		DueDate:       m.DueDate,
		TotalAmount:   m.TotalAmount,
		Status:        domain.InvoiceStatus(m.Status),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainBankStatementLine converts a model BankStatementLine to a domain BankStatementLine
func ToDomainBankStatementLine(m models.BankStatementLine) domain.BankStatementLine {
	return domain.BankStatementLine{
		LineID:        m.LineID,
		BankAccountID: m.BankAccountID,
		StatementDate: m.StatementDate,
		Reference:     m.Reference,
		Description:   m.Description,
		Amount:        m.Amount,
		Reconciled:    m.Reconciled,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
