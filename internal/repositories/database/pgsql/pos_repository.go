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
	"github.com/shopspring/decimal"
)

const (
	posSessionColumns   = `session_id, user_id, start_time, end_time, status, opening_cash, closing_cash`
	posOrderColumns     = `order_id, session_id, customer_id, total_amount, status, created_at`
	posOrderItemColumns = `item_id, order_id, line_number, product_id, quantity, unit_price, subtotal`
	paymentColumns      = `payment_id, order_id, amount, method, created_at`

	// openSessionIndex is the partial unique index allowing one OPEN session per user.
	openSessionIndex = "pos_sessions_one_open_per_user"
)

type PgxPOSRepository struct {
	BaseRepository
}

func newPgxPOSRepository(pool *pgxpool.Pool) portsrepo.POSRepositoryFacade {
	return &PgxPOSRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.POSRepositoryFacade = (*PgxPOSRepository)(nil)

// SaveSession inserts a session. The storage constraint, not a prior read,
// decides whether the user already has an OPEN session.
func (r *PgxPOSRepository) SaveSession(ctx context.Context, s domain.POSSession) error {
	query := `INSERT INTO pos_sessions (` + posSessionColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
	_, err := r.Pool.Exec(ctx, query, s.SessionID, s.UserID, s.StartTime, s.EndTime, string(s.Status), s.OpeningCash, s.ClosingCash)
	if err != nil {
		if code, constraint := pgErrorCode(err); code == pgUniqueViolation && constraint == openSessionIndex {
			return fmt.Errorf("%w: user %s", apperrors.ErrSessionAlreadyOpen, s.UserID)
		}
		return storageError("failed to save pos session "+s.SessionID, err)
	}
	return nil
}

// CloseSession sets the closing fields of an OPEN session.
func (r *PgxPOSRepository) CloseSession(ctx context.Context, sessionID string, closingCash decimal.Decimal, status domain.SessionStatus, endTime time.Time) (*domain.POSSession, error) {
	query := `
		UPDATE pos_sessions
		SET closing_cash = $2, status = $3, end_time = $4
		WHERE session_id = $1 AND status = $5
		RETURNING ` + posSessionColumns + `;
	`
	rows, _ := r.Pool.Query(ctx, query, sessionID, closingCash, string(status), endTime, string(domain.SessionOpen))
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.POSSession])
	if err == nil {
		s := mapping.ToDomainPOSSession(m)
		return &s, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storageError("failed to close pos session "+sessionID, err)
	}

	if _, findErr := r.FindSessionByID(ctx, sessionID); findErr != nil {
		return nil, findErr
	}
	return nil, fmt.Errorf("%w: session %s is not open", apperrors.ErrInvalidState, sessionID)
}

// FindSessionByID retrieves a session. An unknown ID yields apperrors.ErrSessionNotFound.
func (r *PgxPOSRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.POSSession, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+posSessionColumns+` FROM pos_sessions WHERE session_id = $1;`, sessionID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.POSSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSessionNotFound, sessionID)
		}
		return nil, storageError("failed to find pos session "+sessionID, err)
	}
	s := mapping.ToDomainPOSSession(m)
	return &s, nil
}

// FindOpenSessionByUser retrieves the user's OPEN session.
func (r *PgxPOSRepository) FindOpenSessionByUser(ctx context.Context, userID string) (*domain.POSSession, error) {
	query := `SELECT ` + posSessionColumns + ` FROM pos_sessions WHERE user_id = $1 AND status = $2;`
	rows, _ := r.Pool.Query(ctx, query, userID, string(domain.SessionOpen))
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.POSSession])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: no open session for user %s", apperrors.ErrNotFound, userID)
		}
		return nil, storageError("failed to find open pos session for user "+userID, err)
	}
	s := mapping.ToDomainPOSSession(m)
	return &s, nil
}

// SaveOrder inserts an order with its items and payments. The session row is
// share-locked first so it cannot be closed while the order is being written.
func (r *PgxPOSRepository) SaveOrder(ctx context.Context, order domain.POSOrder) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx, `SELECT status FROM pos_sessions WHERE session_id = $1 FOR SHARE;`, order.SessionID).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%w: %s", apperrors.ErrUnknownSession, order.SessionID)
			}
			return storageError("failed to lock pos session "+order.SessionID, err)
		}
		if domain.SessionStatus(status) != domain.SessionOpen {
			return fmt.Errorf("%w: session %s is %s", apperrors.ErrInvalidState, order.SessionID, status)
		}

		orderQuery := `INSERT INTO pos_orders (` + posOrderColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
		if _, err := tx.Exec(ctx, orderQuery, order.OrderID, order.SessionID, order.CustomerID, order.TotalAmount, order.Status, order.CreatedAt); err != nil {
			if code, _ := pgErrorCode(err); code == pgForeignKeyViolation {
				return fmt.Errorf("%w: order customer", apperrors.ErrUnknownCustomer)
			}
			return storageError("failed to insert pos order "+order.OrderID, err)
		}

		batch := &pgx.Batch{}
		itemQuery := `INSERT INTO pos_order_items (` + posOrderItemColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7);`
		for _, item := range order.Items {
			batch.Queue(itemQuery, item.ItemID, item.OrderID, item.LineNumber, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal)
		}
		paymentQuery := `INSERT INTO payments (` + paymentColumns + `) VALUES ($1, $2, $3, $4, $5);`
		for _, p := range order.Payments {
			batch.Queue(paymentQuery, p.PaymentID, p.OrderID, p.Amount, string(p.Method), p.CreatedAt)
		}
		if err := sendBatch(ctx, tx, batch, nil, nil); err != nil {
			if errors.Is(err, apperrors.ErrUnknownReference) {
				return fmt.Errorf("%w: order item references a missing product", apperrors.ErrUnknownProduct)
			}
			return err
		}
		return nil
	})
}

// FindOrderByID retrieves an order with its items and payments.
func (r *PgxPOSRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error) {
	rows, _ := r.Pool.Query(ctx, `SELECT `+posOrderColumns+` FROM pos_orders WHERE order_id = $1;`, orderID)
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.POSOrder])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: pos order %s", apperrors.ErrNotFound, orderID)
		}
		return nil, storageError("failed to find pos order "+orderID, err)
	}

	orders, err := r.attachChildren(ctx, []models.POSOrder{m})
	if err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListOrders retrieves a page of orders, newest first, with items and payments.
func (r *PgxPOSRepository) ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error) {
	query := `SELECT ` + posOrderColumns + ` FROM pos_orders ORDER BY created_at DESC, order_id LIMIT $1 OFFSET $2;`
	rows, _ := r.Pool.Query(ctx, query, limit, offset)
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.POSOrder])
	if err != nil {
		return nil, storageError("failed to list pos orders", err)
	}
	return r.attachChildren(ctx, ms)
}

func (r *PgxPOSRepository) attachChildren(ctx context.Context, ms []models.POSOrder) ([]domain.POSOrder, error) {
	orders := make([]domain.POSOrder, len(ms))
	if len(ms) == 0 {
		return orders, nil
	}

	ids := make([]string, len(ms))
	for i, m := range ms {
		ids[i] = m.OrderID
	}

	itemQuery := `SELECT ` + posOrderItemColumns + ` FROM pos_order_items WHERE order_id = ANY($1) ORDER BY order_id, line_number;`
	rows, _ := r.Pool.Query(ctx, itemQuery, ids)
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.POSOrderItem])
	if err != nil {
		return nil, storageError("failed to query pos order items", err)
	}

	paymentQuery := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = ANY($1) ORDER BY order_id, created_at, payment_id;`
	rows, _ = r.Pool.Query(ctx, paymentQuery, ids)
	payments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Payment])
	if err != nil {
		return nil, storageError("failed to query payments", err)
	}

	itemsByOrder := make(map[string][]domain.POSOrderItem, len(ms))
	for _, it := range items {
		itemsByOrder[it.OrderID] = append(itemsByOrder[it.OrderID], mapping.ToDomainPOSOrderItem(it))
	}
	paymentsByOrder := make(map[string][]domain.Payment, len(ms))
	for _, p := range payments {
		paymentsByOrder[p.OrderID] = append(paymentsByOrder[p.OrderID], mapping.ToDomainPayment(p))
	}

	for i, m := range ms {
		orders[i] = mapping.ToDomainPOSOrder(m)
		orders[i].Items = itemsByOrder[m.OrderID]
		orders[i].Payments = paymentsByOrder[m.OrderID]
		if orders[i].Payments == nil {
			orders[i].Payments = []domain.Payment{}
		}
	}
	return orders, nil
}
