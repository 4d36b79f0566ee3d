package kernel

import (
	"fmt"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when a zero-value Quantity is used.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError("quantity must be created via NewQuantity")

// Quantity is a strictly positive number of product units.
//
// Example:
//
//	q, err := kernel.NewQuantity(5)
//	if err != nil {
//	    // errors.Is(err, errs.ErrValueIsInvalid)
//	}
type Quantity struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewQuantity validates that value is greater than zero.
func NewQuantity(value int) (Quantity, error) {
	if value <= 0 {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", value),
		)
	}

	return Quantity{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// MustNewQuantity is NewQuantity for literals known to be valid. It panics otherwise.
func MustNewQuantity(value int) Quantity {
	q, err := NewQuantity(value)
	if err != nil {
		panic(err)
	}
	return q
}

// Validate ensures the quantity was created through NewQuantity.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Int returns the number of units.
func (q Quantity) Int() int {
	return q.value
}

// Add returns the sum of both quantities.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{
		value: q.value + other.value,
		guard: guard.NewConstructorGuard(),
	}
}

func (q Quantity) String() string {
	return fmt.Sprintf("%d", q.value)
}
