package checkout

import (
	"fmt"

	"github.com/google/uuid"
)

// validateRequest applies the full input contract before any store or
// payment call. The cart id must be a canonical dashed UUID: uuid.Parse
// also accepts braced/urn/bare-hex forms, so the length check pins the
// 36-character shape.
func validateRequest(req CheckoutRequest) error {
	if req.CartID == "" || len(req.CartID) != 36 {
		return &ValidationError{Reason: "missing or invalid cartId"}
	}
	if _, err := uuid.Parse(req.CartID); err != nil {
		return &ValidationError{Reason: "missing or invalid cartId"}
	}

	if req.CustomerID == "" {
		return &ValidationError{Reason: "missing or invalid customerId"}
	}

	if len(req.Items) == 0 {
		return &ValidationError{Reason: "Cart is empty"}
	}

	for i, item := range req.Items {
		if item.ProductID == "" || item.Name == "" {
			return &ValidationError{Reason: fmt.Sprintf("invalid item at index %d: productId and name are required", i)}
		}
		if item.UnitPrice <= 0 {
			return &ValidationError{Reason: fmt.Sprintf("invalid unitPrice for item at index %d: must be a positive integer", i)}
		}
		if item.Quantity < 1 {
			return &ValidationError{Reason: fmt.Sprintf("invalid quantity for item at index %d: must be at least 1", i)}
		}
	}

	return nil
}
