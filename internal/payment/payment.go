package payment

import "context"

// Capturer charges the customer for a persisted order. The orchestrator
// invokes it at most once per created order, strictly after the order is
// durable; a capture failure never rolls the order back.
type Capturer interface {
	Capture(ctx context.Context, orderID string, amount int64) error
}
