package checkout

import (
	"time"

	"checkout-be/internal/pricing"
)

type OrderStatus string

// Orders have no lifecycle beyond creation in this service; a persisted
// order is always CONFIRMED.
const StatusConfirmed OrderStatus = "CONFIRMED"

// Order is the unit of durable state, one record per cart id. Every field
// is fixed at creation; duplicate requests read it back unchanged.
type Order struct {
	OrderID    string             `json:"orderId"`
	CartID     string             `json:"cartId"`
	CustomerID string             `json:"customerId"`
	Items      []pricing.LineItem `json:"items"`
	Subtotal   int64              `json:"subtotal"`
	Tax        int64              `json:"tax"`
	Total      int64              `json:"total"`
	Status     OrderStatus        `json:"status"`
	CreatedAt  time.Time          `json:"createdAt"`
}

// CheckoutRequest is the raw, untrusted checkout payload. CartID doubles as
// the idempotency key for the whole attempt.
type CheckoutRequest struct {
	CartID     string         `json:"cartId"`
	CustomerID string         `json:"customerId"`
	Items      []pricing.Item `json:"items"`
}

// CreateResult tags the outcome of a conditional create: Created reports
// whether this call inserted the record, and Order is the row on record
// either way.
type CreateResult struct {
	Created bool
	Order   *Order
}
