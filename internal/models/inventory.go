package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is the database row of the suppliers table.
type Supplier struct {
	SupplierID    string  `db:"supplier_id"`
	Name          string  `db:"name"`
	ContactPerson *string `db:"contact_person"`
	Email         *string `db:"email"`
	Phone         *string `db:"phone"`
	Address       *string `db:"address"`
	AuditFields
}

// InventoryProduct is the database row of the inventory_products table.
type InventoryProduct struct {
	ProductID       string          `db:"product_id"`
	SKU             string          `db:"sku"`
	Name            string          `db:"name"`
	Description     *string         `db:"description"`
	Price           decimal.Decimal `db:"price"`
	CostPrice       decimal.Decimal `db:"cost_price"`
	QuantityInStock int64           `db:"quantity_in_stock"`
	SupplierID      *string         `db:"supplier_id"`
	AuditFields
}

// PurchaseOrder is the database row of the purchase_orders table.
type PurchaseOrder struct {
	PurchaseOrderID string          `db:"purchase_order_id"`
	SupplierID      string          `db:"supplier_id"`
	OrderDate       time.Time       `db:"order_date"`
	Status          string          `db:"status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	ReceivedAt      *time.Time      `db:"received_at"`
	AuditFields
}

// PurchaseOrderItem is the database row of the purchase_order_items table.
type PurchaseOrderItem struct {
	ItemID          string          `db:"item_id"`
	PurchaseOrderID string          `db:"purchase_order_id"`
	LineNumber      int             `db:"line_number"`
	ProductID       string          `db:"product_id"`
	Quantity        int64           `db:"quantity"`
	UnitPrice       decimal.Decimal `db:"unit_price"`
}
