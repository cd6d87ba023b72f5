package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus is the receiving lifecycle of a purchase order.
type PurchaseOrderStatus string

const (
	POPending   PurchaseOrderStatus = "PENDING"
	POReceived  PurchaseOrderStatus = "RECEIVED"
	POCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid reports whether s is a known purchase order status.
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case POPending, POReceived, POCancelled:
		return true
	}
	return false
}

// PurchaseOrder owns its items. TotalAmount is derived once at creation.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderID"`
	SupplierID      string              `json:"supplierID"`
	OrderDate       time.Time           `json:"orderDate"`
	Status          PurchaseOrderStatus `json:"status"`
	TotalAmount     decimal.Decimal     `json:"totalAmount"`
	ReceivedAt      *time.Time          `json:"receivedAt,omitempty"`
	Items           []PurchaseOrderItem `json:"items,omitempty"`
	AuditFields
}

// PurchaseOrderItem is one product line of a purchase order.
type PurchaseOrderItem struct {
	ItemID          string          `json:"itemID"`
	PurchaseOrderID string          `json:"purchaseOrderID"`
	LineNumber      int             `json:"lineNumber"`
	ProductID       string          `json:"productID"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unitPrice"`
}

// LineTotal returns quantity * unit price.
func (i PurchaseOrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(i.Quantity))
}
