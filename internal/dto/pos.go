package dto

import (
	"time"

	"github.com/SscSPs/erp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSessionRequest opens a cash register session for the caller.
type CreateSessionRequest struct {
	OpeningCash decimal.Decimal `json:"openingCash" binding:"dgte0,dscale"`
}

// CloseSessionRequest closes a session. Status defaults to CLOSED and EndTime to now.
type CloseSessionRequest struct {
	ClosingCash decimal.Decimal       `json:"closingCash" binding:"dgte0,dscale"`
	Status      *domain.SessionStatus `json:"status" binding:"omitempty,oneof=CLOSED"`
	EndTime     *time.Time            `json:"endTime"`
}

// CreateOrderItemRequest is one sold product line.
type CreateOrderItemRequest struct {
	ProductID string          `json:"productID" binding:"required"`
	Quantity  int64           `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unitPrice" binding:"dgte0,dscale"`
}

// CreatePaymentRequest is one tender applied to an order.
type CreatePaymentRequest struct {
	Amount decimal.Decimal      `json:"amount" binding:"dgte0,dscale"`
	Method domain.PaymentMethod `json:"method" binding:"required,oneof=CASH CARD TRANSFER"`
}

// CreateOrderRequest defines a checkout. TotalAmount is taken as supplied.
type CreateOrderRequest struct {
	SessionID   string                   `json:"sessionID" binding:"required"`
	CustomerID  *string                  `json:"customerID"`
	TotalAmount decimal.Decimal          `json:"totalAmount" binding:"dgte0,dscale"`
	Items       []CreateOrderItemRequest `json:"items" binding:"dive"`
	Payments    []CreatePaymentRequest   `json:"payments" binding:"dive"`
}

// ListOrdersResponse wraps a page of POS orders.
type ListOrdersResponse struct {
	Orders []domain.POSOrder `json:"orders"`
}
