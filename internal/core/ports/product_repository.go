package ports

import (
	"context"

	"wholesale/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and assigns its generated reference.
	Add(ctx context.Context, p *product.Product) error

	// Update persists the product's mutable state: stock counters, price and
	// availability.
	Update(ctx context.Context, p *product.Product) error

	// Get retrieves a product by reference without locking it.
	Get(ctx context.Context, reference int) (*product.Product, error)

	// GetForUpdate retrieves a product and holds a row lock on it until the
	// unit of work ends. Callers locking several products must do so in
	// ascending reference order.
	GetForUpdate(ctx context.Context, reference int) (*product.Product, error)
}
