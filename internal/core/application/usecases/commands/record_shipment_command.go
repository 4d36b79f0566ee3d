package commands

import (
	"errors"

	"wholesale/internal/pkg/guard"
)

var ErrRecordShipmentCommandIsNotConstructed = errors.New(
	"RecordShipmentCommand must be created via NewRecordShipmentCommand constructor",
)

// RecordShipmentCommand marks an order as having left the warehouse today.
type RecordShipmentCommand struct { //nolint:recvcheck //using for validation
	orderNumber int

	guard guard.ConstructorGuard
}

func NewRecordShipmentCommand(orderNumber int) RecordShipmentCommand {
	return RecordShipmentCommand{
		orderNumber: orderNumber,
		guard:       guard.NewConstructorGuard(),
	}
}

func (c RecordShipmentCommand) Validate() error {
	return c.guard.Validate(ErrRecordShipmentCommandIsNotConstructed)
}

func (c RecordShipmentCommand) OrderNumber() int {
	return c.orderNumber
}
