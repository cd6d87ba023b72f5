package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// invoiceService records AP and AR invoices. Nothing here touches the ledger.
type invoiceService struct {
	BaseService
	invoiceRepo  portsrepo.InvoiceRepositoryFacade
	supplierRepo portsrepo.SupplierReader
	customerRepo portsrepo.CustomerReader
	now          func() time.Time
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, supplierRepo portsrepo.SupplierReader, customerRepo portsrepo.CustomerReader) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateAPInvoice(ctx context.Context, req dto.CreateAPInvoiceRequest, userID string) (*domain.APInvoice, error) {
	status, err := invoiceStatus(req.InvoiceNumber, req.Status, req.TotalAmount)
	if err != nil {
		return nil, err
	}
	if _, err := s.supplierRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, referenceError(err, apperrors.ErrUnknownSupplier, req.SupplierID)
	}

	invoice := domain.APInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		SupplierID:    req.SupplierID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		TotalAmount:   req.TotalAmount,
		Status:        status,
		AuditFields:   domain.NewAuditFields(s.now(), userID),
	}
	if err := s.invoiceRepo.SaveAPInvoice(ctx, invoice); err != nil {
		s.logUnexpected(ctx, err, "Failed to save AP invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "AP invoice recorded",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("supplier_id", invoice.SupplierID))
	return &invoice, nil
}

func (s *invoiceService) ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error) {
	limit, offset = pagination.Normalize(limit, offset)
	invoices, err := s.invoiceRepo.ListAPInvoices(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list AP invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.APInvoice{}, nil
	}
	return invoices, nil
}

func (s *invoiceService) CreateARInvoice(ctx context.Context, req dto.CreateARInvoiceRequest, userID string) (*domain.ARInvoice, error) {
	status, err := invoiceStatus(req.InvoiceNumber, req.Status, req.TotalAmount)
	if err != nil {
		return nil, err
	}
	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		return nil, referenceError(err, apperrors.ErrUnknownCustomer, req.CustomerID)
	}

	invoice := domain.ARInvoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: req.InvoiceNumber,
		CustomerID:    req.CustomerID,
		InvoiceDate:   req.InvoiceDate,
		DueDate:       req.DueDate,
		TotalAmount:   req.TotalAmount,
		Status:        status,
		AuditFields:   domain.NewAuditFields(s.now(), userID),
	}
	if err := s.invoiceRepo.SaveARInvoice(ctx, invoice); err != nil {
		s.logUnexpected(ctx, err, "Failed to save AR invoice", slog.String("invoice_number", invoice.InvoiceNumber))
		return nil, err
	}

	s.LogInfo(ctx, "AR invoice recorded",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("customer_id", invoice.CustomerID))
	return &invoice, nil
}

func (s *invoiceService) ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error) {
	limit, offset = pagination.Normalize(limit, offset)
	invoices, err := s.invoiceRepo.ListARInvoices(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list AR invoices")
		return nil, err
	}
	if invoices == nil {
		return []domain.ARInvoice{}, nil
	}
	return invoices, nil
}

// invoiceStatus validates the fields shared by both invoice kinds and resolves the default status.
func invoiceStatus(number string, status domain.InvoiceStatus, total decimal.Decimal) (domain.InvoiceStatus, error) {
	if strings.TrimSpace(number) == "" {
		return "", validationError("invoice number is required")
	}
	if total.IsNegative() {
		return "", validationError("total amount must not be negative")
	}
	if err := accounting.ValidateMoneyScale("total amount", total); err != nil {
		return "", err
	}
	if status == "" {
		return domain.InvoiceDraft, nil
	}
	if !status.IsValid() {
		return "", validationError("invalid invoice status %q", status)
	}
	return status, nil
}
