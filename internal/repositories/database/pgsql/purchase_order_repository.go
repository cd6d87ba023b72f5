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
	"github.com/SscSPs/erp_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	purchaseOrderColumns     = `purchase_order_id, supplier_id, order_date, status, total_amount, received_at, created_at, created_by, last_updated_at, last_updated_by`
	purchaseOrderItemColumns = `item_id, purchase_order_id, line_number, product_id, quantity, unit_price`
)

type PgxPurchaseOrderRepository struct {
	BaseRepository
	stock portsrepo.StockAdjuster
}

// newPgxPurchaseOrderRepository creates a repository for purchase orders. Receiving
// goes through stock so the stock increments share the order's transaction.
func newPgxPurchaseOrderRepository(pool *pgxpool.Pool, stock portsrepo.StockAdjuster) portsrepo.PurchaseOrderRepositoryWithTx {
	return &PgxPurchaseOrderRepository{
		BaseRepository: BaseRepository{Pool: pool},
		stock:          stock,
	}
}

var _ portsrepo.PurchaseOrderRepositoryWithTx = (*PgxPurchaseOrderRepository)(nil)

// SavePurchaseOrder inserts header and items and applies stockChanges atomically.
func (r *PgxPurchaseOrderRepository) SavePurchaseOrder(ctx context.Context, order domain.PurchaseOrder, stockChanges map[string]int64) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		m := mapping.ToModelPurchaseOrder(order)
		headerQuery := `INSERT INTO purchase_orders (` + purchaseOrderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
		_, err := tx.Exec(ctx, headerQuery,
			m.PurchaseOrderID,
			m.SupplierID,
			m.OrderDate,
			m.Status,
			m.TotalAmount,
			m.ReceivedAt,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
				return fmt.Errorf("%w: %s", apperrors.ErrUnknownSupplier, m.SupplierID)
			}
			return storageError("failed to insert purchase order "+m.PurchaseOrderID, err)
		}

		itemQuery := `INSERT INTO purchase_order_items (` + purchaseOrderItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
		batch := &pgx.Batch{}
		for _, item := range order.Items {
			im := mapping.ToModelPurchaseOrderItem(item)
			batch.Queue(itemQuery, im.ItemID, im.PurchaseOrderID, im.LineNumber, im.ProductID, im.Quantity, im.UnitPrice)
		}
		if err := sendBatch(ctx, tx, batch, nil, nil); err != nil {
			if errors.Is(err, apperrors.ErrUnknownReference) {
				return fmt.Errorf("%w: purchase order item references a missing product", apperrors.ErrUnknownProduct)
			}
			return err
		}

		if len(stockChanges) == 0 {
			return nil
		}
		return r.stock.AdjustStockInTx(ctx, tx, stockChanges, order.CreatedBy, order.CreatedAt)
	})
}

// TransitionPurchaseOrder moves an order between statuses under a status guard.
func (r *PgxPurchaseOrderRepository) TransitionPurchaseOrder(ctx context.Context, purchaseOrderID string, from, to domain.PurchaseOrderStatus, stockChanges map[string]int64, userID string, at time.Time) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		var receivedAt *time.Time
		if to == domain.POReceived {
			receivedAt = &at
		}

		query := `
			UPDATE purchase_orders
			SET status = $2, received_at = COALESCE($3, received_at), last_updated_at = $4, last_updated_by = $5
			WHERE purchase_order_id = $1 AND status = $6;
		`
		ct, err := tx.Exec(ctx, query, purchaseOrderID, string(to), receivedAt, at, userID, string(from))
		if err != nil {
			return storageError("failed to update purchase order "+purchaseOrderID, err)
		}
		if ct.RowsAffected() == 0 {
			var exists bool
			if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM purchase_orders WHERE purchase_order_id = $1);`, purchaseOrderID).Scan(&exists); err != nil {
				return storageError("failed to check purchase order "+purchaseOrderID, err)
			}
			if !exists {
				return fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
			}
			return fmt.Errorf("%w: purchase order %s is not %s", apperrors.ErrInvalidState, purchaseOrderID, from)
		}

		if len(stockChanges) == 0 {
			return nil
		}
		return r.stock.AdjustStockInTx(ctx, tx, stockChanges, userID, at)
	})
}

// FindPurchaseOrderByID retrieves a purchase order with its items.
func (r *PgxPurchaseOrderRepository) FindPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+purchaseOrderColumns+` FROM purchase_orders WHERE purchase_order_id = $1;`, purchaseOrderID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.PurchaseOrder])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: purchase order %s", apperrors.ErrNotFound, purchaseOrderID)
		}
		return nil, storageError("failed to find purchase order "+purchaseOrderID, err)
	}

	items, err := r.findItemsByOrderIDs(ctx, []string{purchaseOrderID})
	if err != nil {
		return nil, err
	}

	order := mapping.ToDomainPurchaseOrder(m)
	order.Items = items[purchaseOrderID]
	return &order, nil
}

// ListPurchaseOrders retrieves a page of purchase orders with their items.
func (r *PgxPurchaseOrderRepository) ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	query := `
		SELECT ` + purchaseOrderColumns + `
		FROM purchase_orders
		ORDER BY order_date DESC, purchase_order_id
		LIMIT $1 OFFSET $2;
	`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseOrder])
	if err != nil {
		return nil, storageError("failed to list purchase orders", err)
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.PurchaseOrderID
	}
	items, err := r.findItemsByOrderIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.PurchaseOrder, len(ms))
	for i, m := range ms {
		orders[i] = mapping.ToDomainPurchaseOrder(m)
		orders[i].Items = items[m.PurchaseOrderID]
	}
	return orders, nil
}

func (r *PgxPurchaseOrderRepository) findItemsByOrderIDs(ctx context.Context, orderIDs []string) (map[string][]domain.PurchaseOrderItem, error) {
	grouped := make(map[string][]domain.PurchaseOrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT ` + purchaseOrderItemColumns + `
		FROM purchase_order_items
		WHERE purchase_order_id = ANY($1)
		ORDER BY purchase_order_id, line_number;
	`
	rows, _ := r.Pool.Query(ctx, query, orderIDs)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.PurchaseOrderItem])
	if err != nil {
		return nil, storageError("failed to query purchase order items", err)
	}
	for _, m := range ms {
		grouped[m.PurchaseOrderID] = append(grouped[m.PurchaseOrderID], mapping.ToDomainPurchaseOrderItem(m))
	}
	return grouped, nil
}
