package checkout

import (
	"context"
	"fmt"
	"time"

	"checkout-be/internal/logger"
	"checkout-be/internal/payment"
	"checkout-be/internal/pricing"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	// Checkout processes one order-creation attempt. The returned order is
	// the record on file for the request's cart id, whether this call
	// created it or an earlier/concurrent one did. A *ValidationError means
	// the input was rejected before any side effect.
	Checkout(ctx context.Context, req CheckoutRequest) (*Order, error)
}

type service struct {
	repo     Repository
	capturer payment.Capturer

	// Injected so tests can pin ids and timestamps.
	newID func() string
	now   func() time.Time
}

func NewService(repo Repository, capturer payment.Capturer) Service {
	return &service{
		repo:     repo,
		capturer: capturer,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

func (s *service) Checkout(ctx context.Context, req CheckoutRequest) (*Order, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	log := logger.FromCtx(ctx).With(zap.String("cart_id", req.CartID))

	log.Info("checkout.start",
		zap.String("customer_id", req.CustomerID),
		zap.Int("item_count", len(req.Items)),
	)

	// Fast path for retries: an order on record means this cart is done.
	existing, err := s.repo.FetchByCartID(ctx, req.CartID)
	if err != nil {
		log.Error("checkout.error", zap.String("stage", "probe"), zap.Error(err))
		return nil, fmt.Errorf("idempotency probe for cart %s: %w", req.CartID, err)
	}
	if existing != nil {
		log.Info("checkout.duplicate", zap.String("order_id", existing.OrderID))
		return existing, nil
	}

	priced := pricing.Compute(req.Items)

	candidate := &Order{
		OrderID:    s.newID(),
		CartID:     req.CartID,
		CustomerID: req.CustomerID,
		Items:      priced.Items,
		Subtotal:   priced.Subtotal,
		Tax:        priced.Tax,
		Total:      priced.Total,
		Status:     StatusConfirmed,
		CreatedAt:  s.now().UTC(),
	}

	res, err := s.repo.CreateIfAbsent(ctx, candidate)
	if err != nil {
		log.Error("checkout.error", zap.String("stage", "persist"), zap.Error(err))
		return nil, fmt.Errorf("persist order for cart %s: %w", req.CartID, err)
	}

	// A concurrent request won between the probe and the insert. Same
	// outcome as the fast path: their record, no capture from us. The new
	// payload's figures are dropped on the floor, which the order_id here
	// makes visible to operators.
	if !res.Created {
		log.Info("checkout.duplicate", zap.String("order_id", res.Order.OrderID))
		return res.Order, nil
	}

	order := res.Order
	log = log.With(zap.String("order_id", order.OrderID))

	// Persist-then-capture, strictly in that sequence: the charge must
	// reference an order that durably exists.
	log.Info("payment.capture", zap.Int64("amount", order.Total))
	if err := s.capturer.Capture(ctx, order.OrderID, order.Total); err != nil {
		// The order stays on record; capture recovery is operational.
		log.Error("checkout.error", zap.String("stage", "capture"), zap.Error(err))
		return nil, fmt.Errorf("capture payment for order %s: %w", order.OrderID, err)
	}

	log.Info("checkout.complete", zap.Int64("total", order.Total))
	return order, nil
}
