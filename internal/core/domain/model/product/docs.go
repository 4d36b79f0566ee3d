// Package product provides the Product aggregate of the wholesale catalog.
//
// A product carries two counters shared by every order that references it:
//   - unitsInStock: physical units in the warehouse
//   - unitsOnOrder: units committed to lines of orders not yet shipped
//
// Key business rules:
//   - A line may only be reserved on an available product
//   - Reservations never push unitsOnOrder above unitsInStock
//   - Shipping a line removes its units from both counters; stock may go
//     negative if it was adjusted downward after the line was taken
//
// The counters are the contended resource of the system. Callers load a product
// under a row lock (ports.ProductRepository.GetForUpdate) before mutating it.
package product
