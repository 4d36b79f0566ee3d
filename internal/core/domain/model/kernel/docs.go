// Package kernel contains the shared value objects of the wholesale domain.
//
// The package includes:
//   - Quantity: a strictly positive number of units ordered on a line
//   - DiscountRate: a decimal fraction in [0, 1] applied to an order
//
// Both are immutable and must be created through their constructors; the zero
// value fails Validate.
package kernel
