package services

import (
	"context"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/dto"
)

// SupplierSvc defines supplier operations
type SupplierSvc interface {
	CreateSupplier(ctx context.Context, req dto.CreateSupplierRequest, userID string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, limit int, offset int) ([]domain.Supplier, error)
}

// ProductSvc defines catalog operations
type ProductSvc interface {
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, userID string) (*domain.InventoryProduct, error)
	GetProductByID(ctx context.Context, productID string) (*domain.InventoryProduct, error)
	ListProducts(ctx context.Context, limit int, offset int) ([]domain.InventoryProduct, error)
}

// InventorySvcFacade combines supplier and product operations
type InventorySvcFacade interface {
	SupplierSvc
	ProductSvc
}

// PurchaseOrderReaderSvc defines read operations for purchase orders
type PurchaseOrderReaderSvc interface {
	GetPurchaseOrderByID(ctx context.Context, purchaseOrderID string) (*domain.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, limit int, offset int) ([]domain.PurchaseOrder, error)
}

// PurchaseOrderWriterSvc defines write operations for purchase orders
type PurchaseOrderWriterSvc interface {
	// CreatePurchaseOrder persists an order with its items. An order created
	// RECEIVED increments stock in the same transaction.
	CreatePurchaseOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest, userID string) (*domain.PurchaseOrder, error)

	// ReceivePurchaseOrder moves a PENDING order to RECEIVED and increments stock.
	ReceivePurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error)

	// CancelPurchaseOrder moves a PENDING order to CANCELLED.
	CancelPurchaseOrder(ctx context.Context, purchaseOrderID string, userID string) (*domain.PurchaseOrder, error)
}

// PurchaseOrderSvcFacade combines all purchase order service interfaces
type PurchaseOrderSvcFacade interface {
	PurchaseOrderReaderSvc
	PurchaseOrderWriterSvc
}

// CustomerSvcFacade defines customer operations
type CustomerSvcFacade interface {
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, userID string) (*domain.Customer, error)
	GetCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)
	ListCustomers(ctx context.Context, limit int, offset int) ([]domain.Customer, error)
}
