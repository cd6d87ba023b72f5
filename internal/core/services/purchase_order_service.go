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

// purchaseOrderService creates purchase orders and receives them into stock.
type purchaseOrderService struct {
	BaseService
	orderRepo     portsrepo.PurchaseOrderRepositoryFacade
	inventoryRepo portsrepo.InventoryRepositoryFacade
	now           func() time.Time
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(orderRepo portsrepo.PurchaseOrderRepositoryFacade, inventoryRepo portsrepo.InventoryRepositoryFacade) portssvc.PurchaseOrderSvcFacade {
	return &purchaseOrderService{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		now:           time.Now,
	}
}

var _ portssvc.PurchaseOrderSvcFacade = (*purchaseOrderService)(nil)

func (s *purchaseOrderService) CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error) {
	status := req.Status
	if status == "" {
		status = domain.POPending
	}
	if !status.IsValid() {
		return nil, validationError("invalid purchase order status %q", status)
	}
	if len(req.Items) == 0 {
		return nil, apperrors.ErrEmptyDocument
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

	if _, err := s.inventoryRepo.FindSupplierByID(ctx, req.SupplierID); err != nil {
		return nil, referenceError(err, apperrors.ErrUnknownSupplier, req.SupplierID)
	}
	if err := s.ensureProductsExist(ctx, req.Items); err != nil {
		return nil, err
	}

	now := s.now()
	order := domain.PurchaseOrder{
		PurchaseOrderID: uuid.NewString(),
		SupplierID:      req.SupplierID,
		OrderDate:       now,
		Status:          status,
		Items:           make([]domain.PurchaseOrderItem, len(req.Items)),
		AuditFields:     domain.NewAuditFields(now, userID),
	}
	if req.OrderDate != nil {
		order.OrderDate = *req.OrderDate
	}
	for i, item := range req.Items {
		order.Items[i] = domain.PurchaseOrderItem{
			ItemID:          uuid.NewString(),
			PurchaseOrderID: order.PurchaseOrderID,
			LineNumber:      i + 1,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
		}
	}
	order.TotalAmount = accounting.PurchaseOrderTotal(order.Items)

	var stockChanges map[string]int64
	if status == domain.POReceived {
		order.ReceivedAt = &now
		stockChanges = accounting.NetStockChanges(order.Items)
	}

	if err := s.orderRepo.SavePurchaseOrder(ctx, order, stockChanges); err != nil {
		s.logUnexpected(ctx, err, "Failed to save purchase order",
			slog.String("purchase_order_id", order.PurchaseOrderID))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase order created",
		slog.String("purchase_order_id", order.PurchaseOrderID),
		slog.String("status", string(order.Status)),
		slog.String("total_amount", order.TotalAmount.String()))
	return &order, nil
}

// ReceivePurchaseOrder moves a PENDING order to RECEIVED and increments stock.
func (s *purchaseOrderService) ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error) {
	return s.transition(ctx, purchaseOrderID, domain.POReceived, userID)
}

// CancelPurchaseOrder moves a PENDING order to CANCELLED. Stock is untouched.
func (s *purchaseOrderService) CancelPurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error) {
	return s.transition(ctx, purchaseOrderID, domain.POCancelled, userID)
}

func (s *purchaseOrderService) transition(ctx context.Context, purchaseOrderID string, to domain.PurchaseOrderStatus, userID string) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to load purchase order",
			slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}
	if order.Status != domain.POPending {
		return nil, fmt.Errorf("%w: purchase order %s is %s", apperrors.ErrInvalidState, purchaseOrderID, order.Status)
	}

	var stockChanges map[string]int64
	if to == domain.POReceived {
		stockChanges = accounting.NetStockChanges(order.Items)
	}

	now := s.now()
	if err := s.orderRepo.TransitionPurchaseOrder(ctx, purchaseOrderID, domain.POPending, to, stockChanges, userID, now); err != nil {
		s.logUnexpected(ctx, err, "Failed to transition purchase order",
			slog.String("purchase_order_id", purchaseOrderID),
			slog.String("to", string(to)))
		return nil, err
	}

	order.Status = to
	order.LastUpdatedAt = now
	order.LastUpdatedBy = userID
	if to == domain.POReceived {
		order.ReceivedAt = &now
	}

	s.LogInfo(ctx, "Purchase order transitioned",
		slog.String("purchase_order_id", purchaseOrderID),
		slog.String("status", string(to)))
	return order, nil
}

func (s *purchaseOrderService) GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error) {
	order, err := s.orderRepo.FindPurchaseOrderByID(ctx, purchaseOrderID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find purchase order",
			slog.String("purchase_order_id", purchaseOrderID))
		return nil, err
	}
	return order, nil
}

func (s *purchaseOrderService) ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error) {
	limit, offset = pagination.Normalize(limit, offset)
	orders, err := s.orderRepo.ListPurchaseOrders(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase orders")
		return nil, err
	}
	if orders == nil {
		return []domain.PurchaseOrder{}, nil
	}
	return orders, nil
}

func (s *purchaseOrderService) ensureProductsExist(ctx context.Context, items []dto.CreatePurchaseOrderItemRequest) error {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	return ensureProducts(ctx, s.inventoryRepo, ids)
}

// ensureProducts fails with ErrUnknownProduct for the first id the catalog does not know.
func ensureProducts(ctx context.Context, repo portsrepo.ProductReader, ids []string) error {
	found, err := repo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrUnknownProduct, id)
		}
	}
	return nil
}
