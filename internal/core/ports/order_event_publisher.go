package ports

import (
	"context"

	"wholesale/internal/core/domain/model/order"
)

// OrderChange names what happened to an order.
type OrderChange string

const (
	OrderCreated   OrderChange = "order.created"
	OrderLineAdded OrderChange = "order.line_added"
	OrderShipped   OrderChange = "order.shipped"
)

// OrderEventPublisher announces committed order changes to other systems.
// It is called after the unit of work commits; a failure to publish never
// undoes the change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, change OrderChange, o *order.Order) error
}
