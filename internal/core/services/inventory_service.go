package services

import (
	"context"
	"log/slog"
	"strings"
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

// inventoryService manages suppliers and the product catalog.
type inventoryService struct {
	BaseService
	repo portsrepo.InventoryRepositoryFacade
	now  func() time.Time
}

// NewInventoryService creates a new inventory service
func NewInventoryService(repo portsrepo.InventoryRepositoryFacade) portssvc.InventorySvcFacade {
	return &inventoryService{repo: repo, now: time.Now}
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

func (s *inventoryService) CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, validationError("supplier name is required")
	}

	supplier := domain.Supplier{
		SupplierID:    uuid.NewString(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AuditFields:   domain.NewAuditFields(s.now(), userID),
	}
	if err := s.repo.SaveSupplier(ctx, supplier); err != nil {
		s.logUnexpected(ctx, err, "Failed to save supplier")
		return nil, err
	}

	s.LogInfo(ctx, "Supplier created", slog.String("supplier_id", supplier.SupplierID))
	return &supplier, nil
}

func (s *inventoryService) ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error) {
	limit, offset = pagination.Normalize(limit, offset)
	suppliers, err := s.repo.ListSuppliers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	if suppliers == nil {
		return []domain.Supplier{}, nil
	}
	return suppliers, nil
}

// CreateProduct adds a catalog entry with its opening stock.
func (s *inventoryService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.InventoryProduct, error) {
	if strings.TrimSpace(req.SKU) == "" || strings.TrimSpace(req.Name) == "" {
		return nil, validationError("sku and name are required")
	}
	if req.Price.IsNegative() || req.CostPrice.IsNegative() {
		return nil, validationError("price and cost price must not be negative")
	}
	if err := accounting.ValidateMoneyScale("price", req.Price, req.CostPrice); err != nil {
		return nil, err
	}
	if req.QuantityInStock < 0 {
		return nil, validationError("quantity in stock must not be negative")
	}
	if req.SupplierID != nil {
		if _, err := s.repo.FindSupplierByID(ctx, *req.SupplierID); err != nil {
			return nil, referenceError(err, apperrors.ErrUnknownSupplier, *req.SupplierID)
		}
	}

	product := domain.InventoryProduct{
		ProductID:       uuid.NewString(),
		SKU:             req.SKU,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		CostPrice:       req.CostPrice,
		QuantityInStock: req.QuantityInStock,
		SupplierID:      req.SupplierID,
		AuditFields:     domain.NewAuditFields(s.now(), userID),
	}
	if err := s.repo.SaveProduct(ctx, product); err != nil {
		s.logUnexpected(ctx, err, "Failed to save product", slog.String("sku", product.SKU))
		return nil, err
	}

	s.LogInfo(ctx, "Product created",
		slog.String("product_id", product.ProductID),
		slog.String("sku", product.SKU))
	return &product, nil
}

func (s *inventoryService) GetProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to find product", slog.String("product_id", productID))
		return nil, err
	}
	return product, nil
}

func (s *inventoryService) ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error) {
	limit, offset = pagination.Normalize(limit, offset)
	products, err := s.repo.ListProducts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products")
		return nil, err
	}
	if products == nil {
		return []domain.InventoryProduct{}, nil
	}
	return products, nil
}
