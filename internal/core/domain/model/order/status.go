package order

import (
	"fmt"

	"wholesale/internal/pkg/errs"
)

// Status is derived from the shipped date: an order without one is Open.
//
//	Open ──> Shipped
//
// Shipped is final.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Open orders accept new lines.
	Open

	// Shipped orders have left the warehouse; their lines are frozen.
	Shipped
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Open:    "Open",
		Shipped: "Shipped",
	}
}

// String returns the status name, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s != Open && s != Shipped {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// EnsureOpen returns ErrOrderAlreadyShipped for Shipped and a validation error
// for invalid values.
func (s Status) EnsureOpen() error {
	if s == Shipped {
		return ErrOrderAlreadyShipped
	}
	return s.Validate()
}

// Ship transitions Open to Shipped.
func (s Status) Ship() (Status, error) {
	if err := s.EnsureOpen(); err != nil {
		return Unknown, err
	}
	return Shipped, nil
}
