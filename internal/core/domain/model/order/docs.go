// Package order provides the Order aggregate root and its Line entity for the
// wholesale order rule engine.
//
// The package includes:
//   - Order: owns its lines, carries the discount granted at creation and the shipped date
//   - Line: one product-and-quantity entry, immutable once created
//   - Status: OPEN until the order is shipped, then SHIPPED forever
//
// Key business rules:
//   - An order belongs to one client, set at creation and never changed
//   - The delivery address starts as the client's address
//   - Lines can only be added while the order is open
//   - Shipping is a one-way transition; there is no cancel or un-ship
//
// Lines reference their order and product by key only. Products are loaded
// through ports.ProductRepository when their counters have to change.
package order
