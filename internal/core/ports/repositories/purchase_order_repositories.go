package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
)

// PurchaseOrderReader defines read operations for purchase orders
type PurchaseOrderReader interface {
	// FindPurchaseOrderByID retrieves a purchase order with its ordered items.
	FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)

	// ListPurchaseOrders retrieves a page of purchase orders, newest first, each with its items.
	ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriter defines write operations for purchase orders
type PurchaseOrderWriter interface {
	// SavePurchaseOrder inserts the header and all items and applies stockChanges in one transaction.
	SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, stockChanges map[string]int64) error

	// TransitionPurchaseOrder moves an order from one status to another and applies stockChanges
	// in the same transaction. It returns apperrors.ErrInvalidState when the order is not in from.
	TransitionPurchaseOrder(ctx context.Context, purchaseOrderID string, from, to domain.PurchaseOrderStatus, stockChanges map[string]int64, userID string, at time.Time) error
}

// PurchaseOrderRepositoryFacade combines all purchase order repository interfaces
type PurchaseOrderRepositoryFacade interface {
	PurchaseOrderReader
	PurchaseOrderWriter
}

// PurchaseOrderRepositoryWithTx extends PurchaseOrderRepositoryFacade with transaction capabilities
type PurchaseOrderRepositoryWithTx interface {
	PurchaseOrderRepositoryFacade
	TransactionManager
}
