package commands

import (
	"errors"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/guard"
)

var ErrAddLineCommandIsNotConstructed = errors.New(
	"AddLineCommand must be created via NewAddLineCommand constructor",
)

// AddLineCommand asks for quantity units of a product on an open order.
//
// Only the quantity is validated here, before any store is touched. Order and
// product keys are looked up by the handler so that a missing product is
// reported before a missing order.
type AddLineCommand struct { //nolint:recvcheck //using for validation
	orderNumber      int
	productReference int
	quantity         kernel.Quantity

	guard guard.ConstructorGuard
}

// NewAddLineCommand returns errs.ErrValueIsInvalid when quantity is not positive.
func NewAddLineCommand(orderNumber, productReference, quantity int) (AddLineCommand, error) {
	q, err := kernel.NewQuantity(quantity)
	if err != nil {
		return AddLineCommand{}, err
	}

	return AddLineCommand{
		orderNumber:      orderNumber,
		productReference: productReference,
		quantity:         q,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c AddLineCommand) Validate() error {
	return c.guard.Validate(ErrAddLineCommandIsNotConstructed)
}

func (c AddLineCommand) OrderNumber() int {
	return c.orderNumber
}

func (c AddLineCommand) ProductReference() int {
	return c.productReference
}

func (c AddLineCommand) Quantity() kernel.Quantity {
	return c.quantity
}
