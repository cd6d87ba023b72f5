package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionStatus is the state of a cash register session.
type SessionStatus string

const (
	SessionOpen   SessionStatus = "OPEN"
	SessionClosed SessionStatus = "CLOSED"
)

// PaymentMethod is how a POS order was paid.
type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentCard     PaymentMethod = "CARD"
	PaymentTransfer PaymentMethod = "TRANSFER"
)

// IsValid reports whether m is a known payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentTransfer:
		return true
	}
	return false
}

// POSOrderCompleted is the default status of a checked-out order.
const POSOrderCompleted = "COMPLETED"

// POSSession is a user's cash register session. A user holds at most one OPEN
// session at a time; closing is the only mutation after creation.
type POSSession struct {
	SessionID   string           `json:"sessionID"`
	UserID      string           `json:"userID"`
	StartTime   time.Time        `json:"startTime"`
	EndTime     *time.Time       `json:"endTime,omitempty"`
	Status      SessionStatus    `json:"status"`
	OpeningCash decimal.Decimal  `json:"openingCash"`
	ClosingCash *decimal.Decimal `json:"closingCash,omitempty"`
}

// POSOrder is a checkout within a session. TotalAmount is caller supplied.
type POSOrder struct {
	OrderID     string          `json:"orderID"`
	SessionID   string          `json:"sessionID"`
	CustomerID  *string         `json:"customerID,omitempty"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       []POSOrderItem  `json:"items"`
	Payments    []Payment       `json:"payments"`
}

// POSOrderItem is a sold product line; Subtotal is computed server side.
type POSOrderItem struct {
	ItemID     string          `json:"itemID"`
	OrderID    string          `json:"orderID"`
	LineNumber int             `json:"lineNumber"`
	ProductID  string          `json:"productID"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// Payment is one tender applied to a POS order.
type Payment struct {
	PaymentID string          `json:"paymentID"`
	OrderID   string          `json:"orderID"`
	Amount    decimal.Decimal `json:"amount"`
	Method    PaymentMethod   `json:"method"`
	CreatedAt time.Time       `json:"createdAt"`
}
