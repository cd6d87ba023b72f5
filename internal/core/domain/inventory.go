package domain

import "github.com/shopspring/decimal"

// Supplier is a vendor that purchase orders and AP invoices refer to.
type Supplier struct {
	SupplierID    string  `json:"supplierID"`
	Name          string  `json:"name"`
	ContactPerson *string `json:"contactPerson,omitempty"`
	Email         *string `json:"email,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Address       *string `json:"address,omitempty"`
	AuditFields
}

// InventoryProduct is a SKU-identified catalog record. QuantityInStock starts at
// the opening stock given on creation and is then only changed by receiving a
// purchase order.
type InventoryProduct struct {
	ProductID       string          `json:"productID"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Price           decimal.Decimal `json:"price"`
	CostPrice       decimal.Decimal `json:"costPrice"`
	QuantityInStock int64           `json:"quantityInStock"`
	SupplierID      *string         `json:"supplierID,omitempty"`
	AuditFields
}
