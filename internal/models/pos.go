package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// POSSession is the database row of the pos_sessions table.
type POSSession struct {
	SessionID   string           `db:"session_id"`
	UserID      string           `db:"user_id"`
	StartTime   time.Time        `db:"start_time"`
	EndTime     *time.Time       `db:"end_time"`
	Status      string           `db:"status"`
	OpeningCash decimal.Decimal  `db:"opening_cash"`
	ClosingCash *decimal.Decimal `db:"closing_cash"`
}

// POSOrder is the database row of the pos_orders table.
type POSOrder struct {
	OrderID     string          `db:"order_id"`
	SessionID   string          `db:"session_id"`
	CustomerID  *string         `db:"customer_id"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	Status      string          `db:"status"`
	CreatedAt   time.Time       `db:"created_at"`
}

// POSOrderItem is the database row of the pos_order_items table.
type POSOrderItem struct {
	ItemID     string          `db:"item_id"`
	OrderID    string          `db:"order_id"`
	LineNumber int             `db:"line_number"`
	ProductID  string          `db:"product_id"`
	Quantity   int64           `db:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price"`
	Subtotal   decimal.Decimal `db:"subtotal"`
}

// Payment is the database row of the payments table.
type Payment struct {
	PaymentID string          `db:"payment_id"`
	OrderID   string          `db:"order_id"`
	Amount    decimal.Decimal `db:"amount"`
	Method    string          `db:"method"`
	CreatedAt time.Time       `db:"created_at"`
}
