package dto

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Name          string  `json:"name" binding:"required"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}

// CreateProductRequest defines the data needed to add a product to the catalog.
// QuantityInStock is the opening stock; afterwards stock only grows by receiving purchase orders.
type CreateProductRequest struct {
	SKU             string          `json:"sku" binding:"required"`
	Name            string          `json:"name" binding:"required"`
	Description     *string         `json:"description"`
	Price           decimal.Decimal `json:"price" binding:"dgte0,dscale"`
	CostPrice       decimal.Decimal `json:"costPrice" binding:"dgte0,dscale"`
	QuantityInStock int64           `json:"quantityInStock" binding:"gte=0"`
	SupplierID      *string         `json:"supplierID"`
}

// ListSuppliersResponse wraps a page of suppliers.
type ListSuppliersResponse struct {
	Suppliers []domain.Supplier `json:"suppliers"`
}

// ListProductsResponse wraps a page of products.
type ListProductsResponse struct {
	Products []domain.InventoryProduct `json:"products"`
}

// CreatePurchaseOrderItemRequest is one product line of a new purchase order.
type CreatePurchaseOrderItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0,dscale"`
}

// CreatePurchaseOrderRequest defines a purchase order and its items.
// Status defaults to PENDING; an order created as RECEIVED increments stock immediately.
type CreatePurchaseOrderRequest struct {
	SupplierID string                           `json:"supplierID" binding:"required"`
	OrderDate  *time.Time                       `json:"orderDate"`
	Status     domain.PurchaseOrderStatus       `json:"status" binding:"omitempty,oneof=PENDING RECEIVED CANCELLED"`
	Items      []CreatePurchaseOrderItemRequest `json:"items" binding:"dive"`
}

// ListPurchaseOrdersResponse wraps a page of purchase orders.
type ListPurchaseOrdersResponse struct {
	PurchaseOrders []domain.PurchaseOrder `json:"purchaseOrders"`
}

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ListCustomersResponse wraps a page of customers.
type ListCustomersResponse struct {
	Customers []domain.Customer `json:"customers"`
}
