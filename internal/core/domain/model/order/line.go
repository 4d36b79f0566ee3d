package order

import (
	"errors"
	"fmt"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line was not created by Order.AddLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via Order.AddLine or RestoreLine")

	// ErrLineIDAlreadyAssigned is returned when AssignID is called twice.
	ErrLineIDAlreadyAssigned = errors.New("line id is already assigned")
)

// Line is one product-and-quantity entry of an order. It never changes after
// creation: shipping an order adjusts the products, not its lines.
type Line struct {
	id               int
	orderNumber      int
	productReference int
	quantity         kernel.Quantity

	isConstructed bool
}

// RestoreLine rebuilds a persisted line.
func RestoreLine(id, orderNumber, productReference, quantity int) (*Line, error) {
	q, err := kernel.NewQuantity(quantity)
	if err != nil {
		return nil, err
	}

	if err = errors.Join(
		positiveKey("line id", id),
		positiveKey("order number", orderNumber),
		positiveKey("product reference", productReference),
	); err != nil {
		return nil, err
	}

	return &Line{
		id:               id,
		orderNumber:      orderNumber,
		productReference: productReference,
		quantity:         q,
		isConstructed:    true,
	}, nil
}

// Validate ensures the line was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// AssignID records the key generated by the store when the line is saved.
func (l *Line) AssignID(id int) error {
	if l.id != 0 {
		return ErrLineIDAlreadyAssigned
	}
	if err := positiveKey("line id", id); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) ID() int {
	return l.id
}

func (l *Line) OrderNumber() int {
	return l.orderNumber
}

func (l *Line) ProductReference() int {
	return l.productReference
}

func (l *Line) Quantity() kernel.Quantity {
	return l.quantity
}

func positiveKey(name string, key int) error {
	if key <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name+" is invalid", fmt.Errorf("%d is not greater than 0", key))
	}
	return nil
}
