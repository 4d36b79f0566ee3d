package order_test

import (
	"testing"
	"time"

	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.RestoreClient("ALFKI", "Alfreds Futterkiste", "Obere Str. 57")
	require.NoError(t, err)
	return c
}

func openOrder(t *testing.T, number int) *order.Order {
	t.Helper()
	o, err := order.RestoreOrder(number, "ALFKI", "Obere Str. 57", kernel.NoDiscount(), nil, nil)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should copy client code and address", func(t *testing.T) {
		o, err := order.NewOrder(newClient(t), kernel.NoDiscount())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Zero(t, o.Number())
		assert.Equal(t, "ALFKI", o.ClientCode())
		assert.Equal(t, "Obere Str. 57", o.DeliveryAddress())
		assert.True(t, o.Discount().IsZero())
		assert.Equal(t, order.Open, o.Status())
		assert.Nil(t, o.ShippedOn())
		assert.Empty(t, o.Lines())
	})

	t.Run("should keep the given discount", func(t *testing.T) {
		rate, _ := kernel.NewDiscountRate(decimal.RequireFromString("0.15"))

		o, err := order.NewOrder(newClient(t), rate)

		require.NoError(t, err)
		assert.True(t, o.Discount().Decimal().Equal(decimal.RequireFromString("0.15")))
	})

	t.Run("should fail with unconstructed client", func(t *testing.T) {
		o, err := order.NewOrder(&client.Client{}, kernel.NoDiscount())

		assert.Nil(t, o)
		require.ErrorIs(t, err, client.ErrClientIsNotConstructed)
	})
}

func TestOrder_DeliveryAddressIsIndependentOfClient(t *testing.T) {
	o, _ := order.NewOrder(newClient(t), kernel.NoDiscount())

	o.ChangeDeliveryAddress("Berliner Platz 43")

	assert.Equal(t, "Berliner Platz 43", o.DeliveryAddress())
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore lines and shipped date", func(t *testing.T) {
		shipped := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		l1, _ := order.RestoreLine(1, 10, 5, 3)
		l2, _ := order.RestoreLine(2, 10, 7, 4)

		o, err := order.RestoreOrder(10, "ALFKI", "Obere Str. 57", kernel.NoDiscount(), &shipped, []*order.Line{l1, l2})

		require.NoError(t, err)
		assert.Equal(t, 10, o.Number())
		assert.Equal(t, order.Shipped, o.Status())
		assert.True(t, o.IsShipped())
		assert.Equal(t, shipped, *o.ShippedOn())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, 7, o.TotalQuantity())
	})

	t.Run("should reject a line of another order", func(t *testing.T) {
		l, _ := order.RestoreLine(1, 11, 5, 3)

		o, err := order.RestoreOrder(10, "ALFKI", "", kernel.NoDiscount(), nil, []*order.Line{l})

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "belongs to order 11")
	})

	t.Run("should require client code", func(t *testing.T) {
		_, err := order.RestoreOrder(10, " ", "", kernel.NoDiscount(), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject zero number", func(t *testing.T) {
		_, err := order.RestoreOrder(0, "ALFKI", "", kernel.NoDiscount(), nil, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_AssignNumber(t *testing.T) {
	o, _ := order.NewOrder(newClient(t), kernel.NoDiscount())

	require.ErrorIs(t, o.AssignNumber(-1), errs.ErrValueIsInvalid)
	require.NoError(t, o.AssignNumber(42))
	assert.Equal(t, 42, o.Number())
	require.ErrorIs(t, o.AssignNumber(43), order.ErrNumberAlreadyAssigned)
}

func TestOrder_AddLine(t *testing.T) {
	t.Run("should append line to open order", func(t *testing.T) {
		o := openOrder(t, 10)

		l, err := o.AddLine(5, kernel.MustNewQuantity(3))

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Zero(t, l.ID())
		assert.Equal(t, 10, l.OrderNumber())
		assert.Equal(t, 5, l.ProductReference())
		assert.Equal(t, 3, l.Quantity().Int())
		assert.Len(t, o.Lines(), 1)
	})

	t.Run("should refuse lines on shipped order", func(t *testing.T) {
		o := openOrder(t, 10)
		require.NoError(t, o.Ship(time.Now()))

		l, err := o.AddLine(5, kernel.MustNewQuantity(3))

		assert.Nil(t, l)
		require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Empty(t, o.Lines())
	})

	t.Run("should refuse zero-value quantity", func(t *testing.T) {
		o := openOrder(t, 10)

		_, err := o.AddLine(5, kernel.Quantity{})

		require.ErrorIs(t, err, kernel.ErrQuantityIsNotConstructed)
	})

	t.Run("should refuse invalid product reference", func(t *testing.T) {
		o := openOrder(t, 10)

		_, err := o.AddLine(0, kernel.MustNewQuantity(1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Ship(t *testing.T) {
	t.Run("should record the UTC calendar day", func(t *testing.T) {
		o := openOrder(t, 10)
		now := time.Date(2024, 5, 17, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))

		require.NoError(t, o.Ship(now))

		assert.Equal(t, order.Shipped, o.Status())
		assert.Equal(t, time.Date(2024, 5, 18, 0, 0, 0, 0, time.UTC), *o.ShippedOn())
	})

	t.Run("should keep the first shipped date on a second shipment", func(t *testing.T) {
		o := openOrder(t, 10)
		first := time.Date(2024, 5, 17, 10, 0, 0, 0, time.UTC)
		require.NoError(t, o.Ship(first))

		err := o.Ship(first.AddDate(0, 0, 3))

		require.ErrorIs(t, err, order.ErrOrderAlreadyShipped)
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), *o.ShippedOn())
	})

	t.Run("should not expose internal date", func(t *testing.T) {
		o := openOrder(t, 10)
		require.NoError(t, o.Ship(time.Now()))

		d := o.ShippedOn()
		*d = d.AddDate(1, 0, 0)

		assert.NotEqual(t, *d, *o.ShippedOn())
	})
}

func TestOrder_QuantitiesByProduct(t *testing.T) {
	o := openOrder(t, 10)
	_, _ = o.AddLine(9, kernel.MustNewQuantity(2))
	_, _ = o.AddLine(3, kernel.MustNewQuantity(4))
	_, _ = o.AddLine(9, kernel.MustNewQuantity(5))

	got := o.QuantitiesByProduct()

	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].ProductReference)
	assert.Equal(t, 4, got[0].Quantity.Int())
	assert.Equal(t, 9, got[1].ProductReference)
	assert.Equal(t, 7, got[1].Quantity.Int())
	assert.Equal(t, 11, o.TotalQuantity())
}
