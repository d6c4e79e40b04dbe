package checkout

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type Repository interface {
	// FetchByCartID returns the order on record for the cart, or (nil, nil)
	// when none exists. Read-only.
	FetchByCartID(ctx context.Context, cartID string) (*Order, error)

	// CreateIfAbsent inserts the candidate order unless a record already
	// exists for its cart id. Exactly one concurrent caller per cart id
	// observes Created == true; everyone else gets the winning record.
	CreateIfAbsent(ctx context.Context, order *Order) (*CreateResult, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FetchByCartID(ctx context.Context, cartID string) (*Order, error) {
	query := `
		SELECT order_id, cart_id, customer_id, items, subtotal, tax, total, status, created_at
		FROM orders
		WHERE cart_id = $1
	`

	var o Order
	var itemsRaw []byte
	err := r.db.QueryRowContext(ctx, query, cartID).Scan(
		&o.OrderID, &o.CartID, &o.CustomerID, &itemsRaw,
		&o.Subtotal, &o.Tax, &o.Total, &o.Status, &o.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetch order for cart %s: %w", cartID, err)
	}

	if err := json.Unmarshal(itemsRaw, &o.Items); err != nil {
		return nil, fmt.Errorf("decode items for cart %s: %w", cartID, err)
	}

	return &o, nil
}

func (r *repository) CreateIfAbsent(ctx context.Context, order *Order) (*CreateResult, error) {
	itemsRaw, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items for cart %s: %w", order.CartID, err)
	}

	// cart_id is the primary key, so the insert is atomic per cart: the
	// database admits exactly one row regardless of how many candidates race.
	query := `
		INSERT INTO orders (order_id, cart_id, customer_id, items, subtotal, tax, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (cart_id) DO NOTHING
	`

	res, err := r.db.ExecContext(ctx, query,
		order.OrderID, order.CartID, order.CustomerID, itemsRaw,
		order.Subtotal, order.Tax, order.Total, order.Status, order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert order for cart %s: %w", order.CartID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("insert order for cart %s: %w", order.CartID, err)
	}

	if affected == 1 {
		return &CreateResult{Created: true, Order: order}, nil
	}

	// Lost the race: someone else's row is on record, return it.
	existing, err := r.FetchByCartID(ctx, order.CartID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrStoreInconsistency
	}

	return &CreateResult{Created: false, Order: existing}, nil
}
