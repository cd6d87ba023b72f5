package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for supplier data
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
}

// ProductReader defines read operations for inventory products
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error)

	// FindProductsByIDs retrieves several products at once. Missing IDs are absent from the map.
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.InventoryProduct, error)

	ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error)
}

// ProductWriter defines write operations for inventory products
type ProductWriter interface {
	// SaveProduct persists a new product. A duplicate SKU yields apperrors.ErrDuplicate.
	SaveProduct(ctx context.Context, product domain.InventoryProduct) error
}

// StockAdjuster increments stock quantities as part of a larger transaction.
type StockAdjuster interface {
	// AdjustStockInTx adds each quantity to its product inside tx, in ascending product ID order.
	AdjustStockInTx(ctx context.Context, tx pgx.Tx, quantities map[string]int64, userID string, now time.Time) error
}

// InventoryRepositoryFacade combines supplier and product repository interfaces
type InventoryRepositoryFacade interface {
	SupplierReader
	SupplierWriter
	ProductReader
	ProductWriter
	StockAdjuster
}
