package order

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderAlreadyShipped is returned by every mutation of a shipped order
	// except the delivery address.
	ErrOrderAlreadyShipped = errs.NewStateIsInvalidError("order", "order already shipped")

	// ErrNumberAlreadyAssigned is returned when AssignNumber is called twice.
	ErrNumberAlreadyAssigned = errors.New("order number is already assigned")
)

// Order is a client's purchase request. It is the aggregate root owning its lines
// and moves from Open to Shipped exactly once.
//
// Order follows these invariants:
//   - The owning client is set at creation and never changes
//   - The discount is decided at creation and never changes
//   - Lines are only added while the order is open
//   - The shipped date is the sole state flag: nil means open
type Order struct {
	number          int
	clientCode      string
	deliveryAddress string
	discount        kernel.DiscountRate
	shippedOn       *time.Time
	lines           []*Line

	isConstructed bool
}

// NewOrder creates an open order for a client with the delivery address copied
// from the client's current address.
//
// Example:
//
//	c, _ := client.RestoreClient("ALFKI", "Alfreds Futterkiste", "Obere Str. 57")
//	o, err := order.NewOrder(c, services.NewDiscountPolicy().RateFor(150))
//	if err != nil {
//	    // Handle validation error
//	}
//	// o.Number() is zero until the order is saved
func NewOrder(c *client.Client, discount kernel.DiscountRate) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		clientCode:      c.Code(),
		deliveryAddress: c.Address(),
		discount:        discount,
		lines:           make([]*Line, 0),
		isConstructed:   true,
	}, nil
}

// RestoreOrder rebuilds a persisted order with its lines. Every line must belong
// to the order.
func RestoreOrder(
	number int,
	clientCode string,
	deliveryAddress string,
	discount kernel.DiscountRate,
	shippedOn *time.Time,
	lines []*Line,
) (*Order, error) {
	if err := positiveKey("order number", number); err != nil {
		return nil, err
	}
	if strings.TrimSpace(clientCode) == "" {
		return nil, errs.NewValueIsRequiredError("client code")
	}

	restored := make([]*Line, 0, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if l.OrderNumber() != number {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"line is invalid",
				fmt.Errorf("line %d belongs to order %d, not %d", l.ID(), l.OrderNumber(), number),
			)
		}
		restored = append(restored, l)
	}

	return &Order{
		number:          number,
		clientCode:      clientCode,
		deliveryAddress: deliveryAddress,
		discount:        discount,
		shippedOn:       shippedOn,
		lines:           restored,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignNumber records the key generated by the store on first save.
func (o *Order) AssignNumber(number int) error {
	if o.number != 0 {
		return ErrNumberAlreadyAssigned
	}
	if err := positiveKey("order number", number); err != nil {
		return err
	}
	o.number = number
	return nil
}

// Number returns the order key, zero before the order is saved.
func (o *Order) Number() int {
	return o.number
}

// ClientCode returns the key of the owning client.
func (o *Order) ClientCode() string {
	return o.clientCode
}

// DeliveryAddress returns where the order is shipped to.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Discount returns the rate granted at creation.
func (o *Order) Discount() kernel.DiscountRate {
	return o.discount
}

// ShippedOn returns the shipment date, nil while the order is open.
func (o *Order) ShippedOn() *time.Time {
	if o.shippedOn == nil {
		return nil
	}
	d := *o.shippedOn
	return &d
}

// Status derives Open or Shipped from the shipped date.
func (o *Order) Status() Status {
	if o.shippedOn == nil {
		return Open
	}
	return Shipped
}

// IsShipped reports whether the order has left the warehouse.
func (o *Order) IsShipped() bool {
	return o.Status() == Shipped
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// ChangeDeliveryAddress overrides the address copied from the client.
func (o *Order) ChangeDeliveryAddress(address string) {
	o.deliveryAddress = address
}

// AddLine appends a line for productReference while the order is open.
// Stock rules are the product's concern: callers check Product.EnsureCanReserve first.
//
// Returns ErrOrderAlreadyShipped on a shipped order.
func (o *Order) AddLine(productReference int, quantity kernel.Quantity) (*Line, error) {
	if err := o.Status().EnsureOpen(); err != nil {
		return nil, err
	}
	if err := quantity.Validate(); err != nil {
		return nil, err
	}
	if err := positiveKey("product reference", productReference); err != nil {
		return nil, err
	}

	l := &Line{
		orderNumber:      o.number,
		productReference: productReference,
		quantity:         quantity,
		isConstructed:    true,
	}
	o.lines = append(o.lines, l)
	return l, nil
}

// Ship records the shipment on the calendar day of now (UTC).
//
// Returns ErrOrderAlreadyShipped when called on a shipped order; the
// original shipped date is kept.
func (o *Order) Ship(now time.Time) error {
	if _, err := o.Status().Ship(); err != nil {
		return err
	}

	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	o.shippedOn = &day
	return nil
}

// ProductQuantity is the total quantity of one product across an order's lines.
type ProductQuantity struct {
	ProductReference int
	Quantity         kernel.Quantity
}

// QuantitiesByProduct sums line quantities per product, sorted by ascending
// product reference. The ordering is the lock acquisition order used when the
// products are loaded for shipment.
func (o *Order) QuantitiesByProduct() []ProductQuantity {
	totals := make(map[int]kernel.Quantity)
	for _, l := range o.lines {
		if q, ok := totals[l.ProductReference()]; ok {
			totals[l.ProductReference()] = q.Add(l.Quantity())
			continue
		}
		totals[l.ProductReference()] = l.Quantity()
	}

	result := make([]ProductQuantity, 0, len(totals))
	for ref, q := range totals {
		result = append(result, ProductQuantity{ProductReference: ref, Quantity: q})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ProductReference < result[j].ProductReference
	})
	return result
}

// TotalQuantity is the number of articles across all lines.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, l := range o.lines {
		total += l.Quantity().Int()
	}
	return total
}
