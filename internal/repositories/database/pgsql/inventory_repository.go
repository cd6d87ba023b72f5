package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	"github.com/SscSPs/erp_backend/internal/models"
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	supplierColumns = `supplier_id, name, contact_person, email, phone, address, created_at, created_by, last_updated_at, last_updated_by`
	productColumns  = `product_id, sku, name, description, price, cost_price, quantity_in_stock, supplier_id, created_at, created_by, last_updated_at, last_updated_by`
)

type PgxInventoryRepository struct {
	BaseRepository
}

// newPgxInventoryRepository creates a new repository for suppliers and inventory products.
func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryRepositoryFacade {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryRepositoryFacade = (*PgxInventoryRepository)(nil)

// SaveSupplier inserts a new supplier.
func (r *PgxInventoryRepository) SaveSupplier(ctx context.Context, s domain.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	_, err := r.Pool.Exec(ctx, query,
		s.SupplierID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address,
		s.CreatedAt, s.CreatedBy, s.LastUpdatedAt, s.LastUpdatedBy,
	)
	if err != nil {
		return storageError("failed to save supplier "+s.SupplierID, err)
	}
	return nil
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxInventoryRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE supplier_id = $1;`, supplierID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
		}
		return nil, storageError("failed to find supplier "+supplierID, err)
	}
	s := mapping.ToDomainSupplier(m)
	return &s, nil
}

// ListSuppliers retrieves a page of suppliers ordered by name.
func (r *PgxInventoryRepository) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY name, supplier_id LIMIT $1 OFFSET $2;`, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Supplier])
	if err != nil {
		return nil, storageError("failed to list suppliers", err)
	}
	suppliers := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		suppliers[i] = mapping.ToDomainSupplier(m)
	}
	return suppliers, nil
}

// SaveProduct inserts a new inventory product.
func (r *PgxInventoryRepository) SaveProduct(ctx context.Context, p domain.InventoryProduct) error {
	query := `INSERT INTO inventory_products (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`
	_, err := r.Pool.Exec(ctx, query,
		p.ProductID, p.SKU, p.Name, p.Description, p.Price, p.CostPrice, p.QuantityInStock, p.SupplierID,
		p.CreatedAt, p.CreatedBy, p.LastUpdatedAt, p.LastUpdatedBy,
	)
	if err != nil {
		code, constraint := pgErrorCode(err)
		switch {
		case code == pgUniqueViolation && constraint == "inventory_products_sku_key":
			return fmt.Errorf("%w: product sku %s", apperrors.ErrDuplicate, p.SKU)
		case code == pgForeignKeyViolation:
			return fmt.Errorf("%w: product supplier", apperrors.ErrUnknownSupplier)
		}
		return storageError("failed to save product "+p.ProductID, err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxInventoryRepository) FindProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM inventory_products WHERE product_id = $1;`, productID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.InventoryProduct])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, storageError("failed to find product "+productID, err)
	}
	p := mapping.ToDomainInventoryProduct(m)
	return &p, nil
}

// FindProductsByIDs retrieves multiple products keyed by ID.
func (r *PgxInventoryRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.InventoryProduct, error) {
	if len(productIDs) == 0 {
		return map[string]domain.InventoryProduct{}, nil
	}
	rows, _ := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM inventory_products WHERE product_id = ANY($1);`, productIDs)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InventoryProduct])
	if err != nil {
		return nil, storageError("failed to query products by IDs", err)
	}
	products := make(map[string]domain.InventoryProduct, len(ms))
	for _, m := range ms {
		products[m.ProductID] = mapping.ToDomainInventoryProduct(m)
	}
	return products, nil
}

// ListProducts retrieves a page of products ordered by SKU.
func (r *PgxInventoryRepository) ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+productColumns+` FROM inventory_products ORDER BY sku LIMIT $1 OFFSET $2;`, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.InventoryProduct])
	if err != nil {
		return nil, storageError("failed to list products", err)
	}
	products := make([]domain.InventoryProduct, len(ms))
	for i, m := range ms {
		products[i] = mapping.ToDomainInventoryProduct(m)
	}
	return products, nil
}

// AdjustStockInTx increments stock for every product in ascending product ID order.
func (r *PgxInventoryRepository) AdjustStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int64, userID string, now time.Time) error {
	query := `
		UPDATE inventory_products
		SET quantity_in_stock = quantity_in_stock + $2, last_updated_at = $3, last_updated_by = $4
		WHERE product_id = $1;
	`
	batch := &pgx.Batch{}
	productIDs := make([]string, 0, len(quantities))
	for _, productID := range accounting.SortedKeys(quantities) {
		qty := quantities[productID]
		if qty == 0 {
			continue
		}
		batch.Queue(query, productID, qty, now, userID)
		productIDs = append(productIDs, productID)
	}

	return sendBatch(ctx, tx, batch, productIDs, apperrors.ErrUnknownProduct)
}
