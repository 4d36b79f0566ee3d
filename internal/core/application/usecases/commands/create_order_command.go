package commands

import (
	"errors"
	"strings"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request to open a new order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ALFKI")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown client
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	clientCode string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to open an order for clientCode.
// A blank code is rejected; whether the client exists is checked by the handler.
func NewCreateOrderCommand(clientCode string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setClientCode(clientCode); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ClientCode() string {
	return c.clientCode
}

func (c *CreateOrderCommand) setClientCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsInvalidErrorWithCause("client code is invalid", errs.NewValueIsRequiredError("client code"))
	}

	c.clientCode = code
	return nil
}
