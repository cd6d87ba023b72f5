package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_backend/internal/apperrors"
	"github.com/SscSPs/erp_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_backend/internal/core/ports/services"
	"github.com/SscSPs/erp_backend/internal/dto"
	"github.com/SscSPs/erp_backend/internal/utils/accounting"
	"github.com/SscSPs/erp_backend/internal/utils/pagination"
	"github.com/google/uuid"
)

// posService runs cash register sessions and checkouts.
// Orders have no stock or ledger side effect.
type posService struct {
	BaseService
	posRepo      portsrepo.POSRepositoryFacade
	customerRepo portsrepo.CustomerReader
	productRepo  portsrepo.ProductReader
	now          func() time.Time
}

// NewPOSService creates a new POS service
func NewPOSService(posRepo portsrepo.POSRepositoryFacade, customerRepo portsrepo.CustomerReader, productRepo portsrepo.ProductReader) portssvc.POSSvcFacade {
	return &posService{
		posRepo:      posRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		now:          time.Now,
	}
}

var _ portssvc.POSSvcFacade = (*posService)(nil)

func (s *posService) CreateSession(ctx context.Context, req dto.CreateSessionRequest, userID string) (*domain.POSSession, error) {
	if err := accounting.ValidateMoneyScale("opening cash", req.OpeningCash); err != nil {
		return nil, err
	}
	if req.OpeningCash.IsNegative() {
		return nil, validationError("opening cash must not be negative")
	}

	session := domain.POSSession{
		SessionID:   uuid.NewString(),
		UserID:      userID,
		StartTime:   s.now(),
		Status:      domain.SessionOpen,
		OpeningCash: req.OpeningCash,
	}
	if err := s.posRepo.SaveSession(ctx, session); err != nil {
		s.logUnexpected(ctx, err, "Failed to open POS session", slog.String("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "POS session opened",
		slog.String("session_id", session.SessionID),
		slog.String("user_id", userID))
	return &session, nil
}

// CloseSession sets closing cash, status and end time. Orders are not reconciled.
func (s *posService) CloseSession(ctx context.Context, sessionID string, req dto.CloseSessionRequest) (*domain.POSSession, error) {
	if err := accounting.ValidateMoneyScale("closing cash", req.ClosingCash); err != nil {
		return nil, err
	}
	if req.ClosingCash.IsNegative() {
		return nil, validationError("closing cash must not be negative")
	}
	status := domain.SessionClosed
	if req.Status != nil {
		status = *req.Status
	}
	if status != domain.SessionClosed {
		return nil, validationError("session can only be closed, got status %q", status)
	}
	endTime := s.now()
	if req.EndTime != nil {
		endTime = *req.EndTime
	}

	session, err := s.posRepo.CloseSession(ctx, sessionID, req.ClosingCash, status, endTime)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to close POS session", slog.String("session_id", sessionID))
		return nil, err
	}

	s.LogInfo(ctx, "POS session closed",
		slog.String("session_id", sessionID),
		slog.String("closing_cash", req.ClosingCash.String()))
	return session, nil
}

func (s *posService) GetActiveSession(ctx context.Context, userID string) (*domain.POSSession, error) {
	session, err := s.posRepo.FindOpenSessionByUser(ctx, userID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find active POS session", slog.String("user_id", userID))
		return nil, err
	}
	return session, nil
}

// CreateOrder checks out items against an OPEN session. The caller's total is stored as given.
func (s *posService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.POSOrder, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.ErrEmptyDocument
	}
	if err := accounting.ValidateMoneyScale("total amount", req.TotalAmount); err != nil {
		return nil, err
	}
	if req.TotalAmount.IsNegative() {
		return nil, validationError("total amount must not be negative")
	}
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, validationError("item %d: quantity must be greater than zero", i+1)
		}
		if err := accounting.ValidateMoneyScale(fmt.Sprintf("item %d unit price", i+1), item.UnitPrice); err != nil {
			return nil, err
		}
		if item.UnitPrice.IsNegative() {
			return nil, validationError("item %d: unit price must not be negative", i+1)
		}
	}
	for i, p := range req.Payments {
		if p.Amount.IsNegative() {
			return nil, validationError("payment %d: amount must not be negative", i+1)
		}
		if err := accounting.ValidateMoneyScale(fmt.Sprintf("payment %d amount", i+1), p.Amount); err != nil {
			return nil, err
		}
		if !p.Method.IsValid() {
			return nil, validationError("payment %d: invalid method %q", i+1, p.Method)
		}
	}

	session, err := s.posRepo.FindSessionByID(ctx, req.SessionID)
	if err != nil {
		return nil, referenceError(err, apperrors.ErrUnknownSession, req.SessionID)
	}
	if session.Status != domain.SessionOpen {
		return nil, fmt.Errorf("%w: session %s is %s", apperrors.ErrInvalidState, req.SessionID, session.Status)
	}
	if req.CustomerID != nil {
		if _, err := s.customerRepo.FindCustomerByID(ctx, *req.CustomerID); err != nil {
			return nil, referenceError(err, apperrors.ErrUnknownCustomer, *req.CustomerID)
		}
	}
	productIDs := make([]string, len(req.Items))
	for i, item := range req.Items {
		productIDs[i] = item.ProductID
	}
	if err := ensureProducts(ctx, s.productRepo, productIDs); err != nil {
		return nil, err
	}

	now := s.now()
	order := domain.POSOrder{
		OrderID:     uuid.NewString(),
		SessionID:   req.SessionID,
		CustomerID:  req.CustomerID,
		TotalAmount: req.TotalAmount,
		Status:      domain.POSOrderCompleted,
		CreatedAt:   now,
		Items:       make([]domain.POSOrderItem, len(req.Items)),
		Payments:    make([]domain.Payment, len(req.Payments)),
	}
	for i, item := range req.Items {
		order.Items[i] = domain.POSOrderItem{
			ItemID:     uuid.NewString(),
			OrderID:    order.OrderID,
			LineNumber: i + 1,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			Subtotal:   accounting.ItemSubtotal(item.Quantity, item.UnitPrice),
		}
	}
	for i, p := range req.Payments {
		order.Payments[i] = domain.Payment{
			PaymentID: uuid.NewString(),
			OrderID:   order.OrderID,
			Amount:    p.Amount,
			Method:    p.Method,
			CreatedAt: now,
		}
	}

	if err := s.posRepo.SaveOrder(ctx, order); err != nil {
		s.logUnexpected(ctx, err, "Failed to save POS order", slog.String("session_id", req.SessionID))
		return nil, err
	}

	s.LogInfo(ctx, "POS order created",
		slog.String("order_id", order.OrderID),
		slog.String("session_id", order.SessionID),
		slog.String("total_amount", order.TotalAmount.String()))
	return &order, nil
}

func (s *posService) GetOrderByID(ctx context.Context, orderID string) (*domain.POSOrder, error) {
	order, err := s.posRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find POS order", slog.String("order_id", orderID))
		return nil, err
	}
	return order, nil
}

func (s *posService) ListOrders(ctx context.Context, limit int, offset int) ([]domain.POSOrder, error) {
	limit, offset = pagination.Normalize(limit, offset)
	orders, err := s.posRepo.ListOrders(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list POS orders")
		return nil, err
	}
	if orders == nil {
		return []domain.POSOrder{}, nil
	}
	return orders, nil
}
