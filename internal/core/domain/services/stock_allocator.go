package services

import (
	"time"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/product"
	"wholesale/internal/pkg/errs"
)

// StockAllocator moves units between a product's counters as lines are added
// to orders and orders are shipped.
//
// Business rules:
//   - A line is refused when the product is unavailable or its free stock is short
//   - A line is refused on a shipped order
//   - Shipping an order removes every line's quantity from stock and from units on order
//
// Both methods mutate their arguments only when they return nil.
type StockAllocator struct{}

func NewStockAllocator() StockAllocator {
	return StockAllocator{}
}

// Reserve adds a line for p to o and puts the quantity on order.
// Product rules are checked before the order state, so an unavailable product
// is reported even when the order is already shipped.
func (StockAllocator) Reserve(o *order.Order, p *product.Product, quantity kernel.Quantity) (*order.Line, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	if err := p.EnsureCanReserve(quantity); err != nil {
		return nil, err
	}

	line, err := o.AddLine(p.Reference(), quantity)
	if err != nil {
		return nil, err
	}

	if err := p.Reserve(quantity); err != nil {
		return nil, err
	}
	return line, nil
}

// Ship marks o shipped on now's day and consumes stock of every product it
// references. products must hold every product of the order.
func (StockAllocator) Ship(o *order.Order, products []*product.Product, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	byRef := make(map[int]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		byRef[p.Reference()] = p
	}

	totals := o.QuantitiesByProduct()
	for _, t := range totals {
		if _, ok := byRef[t.ProductReference]; !ok {
			return errs.NewObjectNotFoundError("product reference", t.ProductReference)
		}
	}

	if err := o.Ship(now); err != nil {
		return err
	}

	for _, t := range totals {
		if err := byRef[t.ProductReference].Ship(t.Quantity); err != nil {
			return err
		}
	}
	return nil
}
