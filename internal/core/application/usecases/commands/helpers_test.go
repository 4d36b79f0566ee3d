package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.RestoreClient("C1", "Comptoir One", "12 rue des Halles")
	require.NoError(t, err)
	return c
}

func testProduct(t *testing.T, ref, inStock, onOrder int, unavailable bool) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(product.State{
		Reference:    ref,
		Name:         "P1",
		CategoryCode: 1,
		UnitPrice:    decimal.NewFromInt(10),
		UnitsInStock: inStock,
		UnitsOnOrder: onOrder,
		Unavailable:  unavailable,
	})
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, number int, shipped bool, lines ...*order.Line) *order.Order {
	t.Helper()
	var shippedOn *time.Time
	if shipped {
		d := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
		shippedOn = &d
	}
	o, err := order.RestoreOrder(number, "C1", "12 rue des Halles", kernel.NoDiscount(), shippedOn, lines)
	require.NoError(t, err)
	return o
}
