// Package services provides domain services for rules that span more than one
// aggregate of the wholesale system.
//
// The package includes:
//   - DiscountPolicy: decides the discount of a new order from the client's history
//   - StockAllocator: keeps order lines and product stock counters in step
//
// Services never touch persistence. Callers load and lock the aggregates,
// call the service, then save what changed in the same unit of work.
package services
