package product

import (
	"errors"
	"fmt"
	"strings"

	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created through
	// NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

	// ErrProductUnavailable forbids new lines on a product flagged unavailable.
	ErrProductUnavailable = errs.NewStateIsInvalidError("product", "product unavailable")

	// ErrInsufficientStock is returned when units on order plus the requested
	// quantity would exceed units in stock.
	ErrInsufficientStock = errs.NewStateIsInvalidError("product", "insufficient stock")

	// ErrReferenceAlreadyAssigned is returned when AssignReference is called twice.
	ErrReferenceAlreadyAssigned = errors.New("product reference is already assigned")
)

// Product is a catalog item with stock accounting.
//
// Product follows these invariants:
//   - Name is required and unit price is not negative
//   - Reserve refuses quantities that would overcommit physical stock
//   - The reference is assigned once, by the store, when the product is first saved
type Product struct {
	reference       int
	name            string
	categoryCode    int
	unitPrice       decimal.Decimal
	quantityPerUnit string
	unitsInStock    int
	unitsOnOrder    int
	reorderLevel    int
	unavailable     bool

	isConstructed bool
}

// State is the persisted form of a product, used by RestoreProduct.
type State struct {
	Reference       int
	Name            string
	CategoryCode    int
	UnitPrice       decimal.Decimal
	QuantityPerUnit string
	UnitsInStock    int
	UnitsOnOrder    int
	ReorderLevel    int
	Unavailable     bool
}

// NewProduct creates an available catalog item with nothing on order.
// The reference stays zero until the product is saved.
//
// Example:
//
//	p, err := product.NewProduct("Chai", 1, decimal.RequireFromString("18.00"), "10 boxes x 20 bags", 39, 10)
func NewProduct(
	name string,
	categoryCode int,
	unitPrice decimal.Decimal,
	quantityPerUnit string,
	unitsInStock int,
	reorderLevel int,
) (*Product, error) {
	p := &Product{
		categoryCode:    categoryCode,
		quantityPerUnit: quantityPerUnit,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setUnitPrice(unitPrice),
		p.setUnitsInStock(unitsInStock),
		p.setReorderLevel(reorderLevel),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product from persisted state. Counters are taken as
// stored, including a negative stock left by an earlier shipment.
func RestoreProduct(s State) (*Product, error) {
	if s.Reference <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"product reference is invalid",
			fmt.Errorf("%d is not greater than 0", s.Reference),
		)
	}

	p := &Product{
		reference:       s.Reference,
		categoryCode:    s.CategoryCode,
		quantityPerUnit: s.QuantityPerUnit,
		unitsInStock:    s.UnitsInStock,
		unitsOnOrder:    s.UnitsOnOrder,
		reorderLevel:    s.ReorderLevel,
		unavailable:     s.Unavailable,
		isConstructed:   true,
	}

	if err := errors.Join(
		p.setName(s.Name),
		p.setUnitPrice(s.UnitPrice),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was created through one of its constructors.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignReference records the key generated by the store on first save.
func (p *Product) AssignReference(reference int) error {
	if p.reference != 0 {
		return ErrReferenceAlreadyAssigned
	}
	if reference <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"product reference is invalid",
			fmt.Errorf("%d is not greater than 0", reference),
		)
	}
	p.reference = reference
	return nil
}

func (p *Product) Reference() int {
	return p.reference
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) CategoryCode() int {
	return p.categoryCode
}

func (p *Product) UnitPrice() decimal.Decimal {
	return p.unitPrice
}

func (p *Product) QuantityPerUnit() string {
	return p.quantityPerUnit
}

func (p *Product) UnitsInStock() int {
	return p.unitsInStock
}

func (p *Product) UnitsOnOrder() int {
	return p.unitsOnOrder
}

func (p *Product) ReorderLevel() int {
	return p.reorderLevel
}

func (p *Product) IsUnavailable() bool {
	return p.unavailable
}

// MarkUnavailable withdraws the product from new lines. Open lines are kept.
func (p *Product) MarkUnavailable() {
	p.unavailable = true
}

// MarkAvailable lets new lines reference the product again.
func (p *Product) MarkAvailable() {
	p.unavailable = false
}

// FreeUnits is the stock not yet committed to open orders.
func (p *Product) FreeUnits() int {
	return p.unitsInStock - p.unitsOnOrder
}

// NeedsReorder reports whether free units dropped to the reorder level on an
// available product.
func (p *Product) NeedsReorder() bool {
	return !p.unavailable && p.FreeUnits() <= p.reorderLevel
}

// EnsureCanReserve checks, without side effects, that quantity more units may be
// put on order: the product must be available and
// unitsOnOrder + quantity must not exceed unitsInStock.
func (p *Product) EnsureCanReserve(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if p.unavailable {
		return ErrProductUnavailable
	}

	if p.unitsInStock < quantity.Int()+p.unitsOnOrder {
		return fmt.Errorf("%w: %d requested, %d in stock, %d on order",
			ErrInsufficientStock, quantity.Int(), p.unitsInStock, p.unitsOnOrder)
	}

	return nil
}

// Reserve puts quantity units on order after EnsureCanReserve succeeds.
func (p *Product) Reserve(quantity kernel.Quantity) error {
	if err := p.EnsureCanReserve(quantity); err != nil {
		return err
	}

	p.unitsOnOrder += quantity.Int()
	return nil
}

// Ship removes quantity units from stock and from the on-order counter.
// No floor is applied: stock lowered after the reservation may go negative.
func (p *Product) Ship(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	p.unitsInStock -= quantity.Int()
	p.unitsOnOrder -= quantity.Int()
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setUnitPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unit price is invalid",
			fmt.Errorf("%s is negative", price.String()),
		)
	}
	p.unitPrice = price
	return nil
}

func (p *Product) setUnitsInStock(units int) error {
	if units < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"units in stock is invalid",
			fmt.Errorf("%d is negative", units),
		)
	}
	p.unitsInStock = units
	return nil
}

func (p *Product) setReorderLevel(level int) error {
	if level < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"reorder level is invalid",
			fmt.Errorf("%d is negative", level),
		)
	}
	p.reorderLevel = level
	return nil
}
