package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// POSSessionReader defines read operations for cash register sessions
type POSSessionReader interface {
	FindSessionByID(ctx context.Context, sessionID string) (*domain.POSSession, error)

	// FindOpenSessionByUser returns the user's OPEN session or apperrors.ErrNotFound.
	FindOpenSessionByUser(ctx context.Context, userID string) (*domain.POSSession, error)
}

// POSSessionWriter defines write operations for cash register sessions
type POSSessionWriter interface {
	// SaveSession inserts a session. A second OPEN session for the same user
	// yields apperrors.ErrSessionAlreadyOpen.
	SaveSession(ctx context.Context, session domain.POSSession) error

	// CloseSession sets closing cash, status and end time on an OPEN session.
	CloseSession(ctx context.Context, sessionID string, closingCash decimal.Decimal, status domain.SessionStatus, endTime time.Time) (*domain.POSSession, error)
}

// POSOrderReader defines read operations for POS orders
type POSOrderReader interface {
	// FindOrderByID retrieves an order with its items and payments.
	FindOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error)

	ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error)
}

// POSOrderWriter defines write operations for POS orders
type POSOrderWriter interface {
	// SaveOrder inserts the order, its items and its payments in one transaction.
	// The owning session must exist and be OPEN at the time of the insert.
	SaveOrder(ctx context.Context, order domain.POSOrder) error
}

// POSRepositoryFacade combines all POS repository interfaces
type POSRepositoryFacade interface {
	POSSessionReader
	POSSessionWriter
	POSOrderReader
	POSOrderWriter
}
