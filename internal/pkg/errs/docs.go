// Package errs provides standardized error types for the wholesale application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package maps the error kinds surfaced by the order rule engine:
//   - ObjectNotFoundError: a referenced client, product, or order does not exist
//   - ValueIsInvalidError, ValueIsOutOfRangeError, ValueIsRequiredError: invalid input
//   - StateIsInvalidError: a business rule violation on a valid entity
//     (unavailable product, insufficient stock, order already shipped)
//   - ConflictError: transaction or lock contention, safe to retry as a whole
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify errors with errors.Is against the sentinels.
package errs
