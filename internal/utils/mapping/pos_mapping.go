package mapping

import (
	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/SscSPs/erp_backend/internal/models"
)

// ToDomainPOSSession converts a model POSSession to a domain POSSession
func ToDomainPOSSession(m models.POSSession) domain.POSSession {
	return domain.POSSession{
		SessionID:   m.SessionID,
		UserID:      m.UserID,
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      domain.SessionStatus(m.Status),
		OpeningCash: m.OpeningCash,
		ClosingCash: m.ClosingCash,
	}
}

// ToDomainPOSOrder converts a model POSOrder to a domain POSOrder without items or payments
func ToDomainPOSOrder(m models.POSOrder) domain.POSOrder {
	return domain.POSOrder{
		OrderID:     m.OrderID,
		SessionID:   m.SessionID,
		CustomerID:  m.CustomerID,
		TotalAmount: m.TotalAmount,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
	}
}

// ToDomainPOSOrderItem converts a model POSOrderItem to a domain POSOrderItem
func ToDomainPOSOrderItem(m models.POSOrderItem) domain.POSOrderItem {
	return domain.POSOrderItem{
		ItemID:     m.ItemID,
		OrderID:    m.OrderID,
		LineNumber: m.LineNumber,
		ProductID:  m.ProductID,
		Quantity:   m.Quantity,
		UnitPrice:  m.UnitPrice,
		Subtotal:   m.Subtotal,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID: m.PaymentID,
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Method:    domain.PaymentMethod(m.Method),
		CreatedAt: m.CreatedAt,
	}
}
