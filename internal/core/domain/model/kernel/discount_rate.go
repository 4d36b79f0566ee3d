package kernel

import (
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// DiscountRate is the fraction taken off an order total, between 0 and 1 inclusive.
// The zero value is a valid "no discount" rate.
type DiscountRate struct {
	rate decimal.Decimal
}

// NoDiscount is the default rate of a new order.
func NoDiscount() DiscountRate {
	return DiscountRate{rate: decimal.Zero}
}

// NewDiscountRate validates that rate lies in [0, 1].
func NewDiscountRate(rate decimal.Decimal) (DiscountRate, error) {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return DiscountRate{}, errs.NewValueIsOutOfRangeError("discount rate", rate.String(), "0", "1")
	}
	return DiscountRate{rate: rate}, nil
}

// Decimal returns the rate as a decimal fraction.
func (d DiscountRate) Decimal() decimal.Decimal {
	return d.rate
}

// IsZero reports whether no discount applies.
func (d DiscountRate) IsZero() bool {
	return d.rate.IsZero()
}

// Equal compares rates by value, so 0.15 equals 0.150.
func (d DiscountRate) Equal(other DiscountRate) bool {
	return d.rate.Equal(other.rate)
}

func (d DiscountRate) String() string {
	return d.rate.String()
}
