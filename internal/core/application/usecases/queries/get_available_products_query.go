package queries

import (
	"errors"
	"fmt"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery lists products that can be ordered and hold more
// than minStock units.
//
// Example:
//
//	query, _ := NewGetAvailableProductsQuery(0)
//	products, err := handler.Handle(ctx, query) // everything in stock
type GetAvailableProductsQuery struct {
	minStock int

	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery rejects a negative threshold.
func NewGetAvailableProductsQuery(minStock int) (GetAvailableProductsQuery, error) {
	if minStock < 0 {
		return GetAvailableProductsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"minimum stock is invalid",
			fmt.Errorf("%d is negative", minStock),
		)
	}

	return GetAvailableProductsQuery{
		minStock: minStock,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

func (q GetAvailableProductsQuery) MinStock() int {
	return q.minStock
}

type GetAvailableProductsQueryResponse struct {
	Reference       int
	Name            string
	CategoryCode    int
	UnitPrice       decimal.Decimal
	QuantityPerUnit string
	UnitsInStock    int
}
