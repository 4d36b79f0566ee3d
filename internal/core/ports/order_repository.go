package ports

import (
	"context"

	"wholesale/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Lines are stored through AddLine and loaded with their order.
type OrderRepository interface {
	// Add persists a new order and assigns its generated number.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order header: delivery address and shipped date.
	// Lines are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// AddLine persists a new line of an existing order and assigns its id.
	AddLine(ctx context.Context, line *order.Line) error

	// Get retrieves an order with its lines without locking it.
	Get(ctx context.Context, number int) (*order.Order, error)

	// GetForUpdate retrieves an order with its lines and holds a row lock on
	// the order until the unit of work ends. The order row is always locked
	// before any product row.
	GetForUpdate(ctx context.Context, number int) (*order.Order, error)
}
