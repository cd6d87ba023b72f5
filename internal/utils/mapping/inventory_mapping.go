package mapping

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:    m.SupplierID,
		Name:          m.Name,
		ContactPerson: m.ContactPerson,
		Email:         m.Email,
		Phone:         m.Phone,
		Address:       m.Address,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInventoryProduct converts a model InventoryProduct to a domain InventoryProduct
func ToDomainInventoryProduct(m models.InventoryProduct) domain.InventoryProduct {
	return domain.InventoryProduct{
		ProductID:       m.ProductID,
		SKU:             m.SKU,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		CostPrice:       m.CostPrice,
		QuantityInStock: m.QuantityInStock,
		SupplierID:      m.SupplierID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseOrder converts a model PurchaseOrder to a domain PurchaseOrder without items
func ToDomainPurchaseOrder(m models.PurchaseOrder) domain.PurchaseOrder {
	return domain.PurchaseOrder{
		PurchaseOrderID: m.PurchaseOrderID,
		SupplierID:      m.SupplierID,
		OrderDate:       m.OrderDate,
		Status:          domain.PurchaseOrderStatus(m.Status),
		TotalAmount:     m.TotalAmount,
		ReceivedAt:      m.ReceivedAt,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPurchaseOrderItem converts a model PurchaseOrderItem to a domain PurchaseOrderItem
func ToDomainPurchaseOrderItem(m models.PurchaseOrderItem) domain.PurchaseOrderItem {
	return domain.PurchaseOrderItem{
		ItemID:          m.ItemID,
		PurchaseOrderID: m.PurchaseOrderID,
		LineNumber:      m.LineNumber,
		ProductID:       m.ProductID,
		Quantity:        m.Quantity,
		UnitPrice:       m.UnitPrice,
	}
}

// ToDomainCustomer converts a model Customer to a domain Customer
func ToDomainCustomer(m models.Customer) domain.Customer {
	return domain.Customer{
		CustomerID:  m.CustomerID,
		Name:        m.Name,
		Email:       m.Email,
		Phone:       m.Phone,
		Address:     m.Address,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPurchaseOrder converts a domain PurchaseOrder header to its row form.
func ToModelPurchaseOrder(d domain.PurchaseOrder) models.PurchaseOrder {
	return models.PurchaseOrder{
		PurchaseOrderID: d.PurchaseOrderID,
		SupplierID:      d.SupplierID,
		OrderDate:       d.OrderDate,
		Status:          string(d.Status),
		TotalAmount:     d.TotalAmount,
		ReceivedAt:      d.ReceivedAt,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToModelPurchaseOrderItem converts a domain PurchaseOrderItem to its row form.
func ToModelPurchaseOrderItem(d domain.PurchaseOrderItem) models.PurchaseOrderItem {
	return models.PurchaseOrderItem{
		ItemID:          d.ItemID,
		PurchaseOrderID: d.PurchaseOrderID,
		LineNumber:      d.LineNumber,
		ProductID:       d.ProductID,
		Quantity:        d.Quantity,
		UnitPrice:       d.UnitPrice,
	}
}
