package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	apInvoiceColumns = `invoice_id, invoice_number, supplier_id, invoice_date, due_date, total_amount, status, created_at, created_by, last_updated_at, last_updated_by`
	arInvoiceColumns = `invoice_id, invoice_number, customer_id, invoice_date, due_date, total_amount, status, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

// SaveAPInvoice inserts a supplier invoice. Invoice numbers are not unique.
func (r *PgxInvoiceRepository) SaveAPInvoice(ctx context.Context, inv domain.APInvoice) error {
	query := `INSERT INTO ap_invoices (` + apInvoiceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		inv.InvoiceID, inv.InvoiceNumber, inv.SupplierID, inv.InvoiceDate, inv.DueDate, inv.TotalAmount, string(inv.Status),
		inv.CreatedAt, inv.CreatedBy, inv.LastUpdatedAt, inv.LastUpdatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownSupplier, inv.SupplierID)
		}
		return storageError("failed to save ap invoice "+inv.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) ListAPInvoices(ctx context.Context, limit int, offset int) ([]domain.APInvoice, error) {
	query := `SELECT ` + apInvoiceColumns + ` FROM ap_invoices ORDER BY invoice_date DESC, invoice_id LIMIT $1 OFFSET $2;`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.APInvoice])
	if err != nil {
		return nil, storageError("failed to list ap invoices", err)
	}
	invoices := make([]domain.APInvoice, len(ms))
	for i, m := range ms {
		invoices[i] = mapping.ToDomainAPInvoice(m)
	}
	return invoices, nil
}

// SaveARInvoice inserts a customer invoice. Invoice numbers are not unique.
func (r *PgxInvoiceRepository) SaveARInvoice(ctx context.Context, inv domain.ARInvoice) error {
	query := `INSERT INTO ar_invoices (` + arInvoiceColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`
	_, err := r.Pool.Exec(ctx, query,
		inv.InvoiceID, inv.InvoiceNumber, inv.CustomerID, inv.InvoiceDate, inv.DueDate, inv.TotalAmount, string(inv.Status),
		inv.CreatedAt, inv.CreatedBy, inv.LastUpdatedAt, inv.LastUpdatedBy,
	)
	if err != nil {
		if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownCustomer, inv.CustomerID)
		}
		return storageError("failed to save ar invoice "+inv.InvoiceID, err)
	}
	return nil
}

func (r *PgxInvoiceRepository) ListARInvoices(ctx context.Context, limit int, offset int) ([]domain.ARInvoice, error) {
	query := `SELECT ` + arInvoiceColumns + ` FROM ar_invoices ORDER BY invoice_date DESC, invoice_id LIMIT $1 OFFSET $2;`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ARInvoice])
	if err != nil {
		return nil, storageError("failed to list ar invoices", err)
	}
	invoices := make([]domain.ARInvoice, len(ms))
	for i, m := range ms {
		invoices[i] = mapping.ToDomainARInvoice(m)
	}
	return invoices, nil
}
