package services

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
)

// POSSessionSvc defines cash register session operations
type POSSessionSvc interface {
	// CreateSession opens a session for userID. A user may hold one OPEN session.
	CreateSession(ctx context.Context, req dto.CreateSessionRequest, userID string) (*domain.POSSession, error)

	// CloseSession records the closing cash of an OPEN session.
	CloseSession(ctx context.Context, sessionID string, req dto.CloseSessionRequest) (*domain.POSSession, error)

	// GetActiveSession returns the caller's OPEN session.
	GetActiveSession(ctx context.Context, userID string) (*domain.POSSession, error)
}

// POSOrderSvc defines checkout operations
type POSOrderSvc interface {
	// CreateOrder persists an order with its items and payments in one transaction.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.POSOrder, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error)
	ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error)
}

// POSSvcFacade combines session and order operations
type POSSvcFacade interface {
	POSSessionSvc
	POSOrderSvc
}
