package queries

import (
	"errors"

	"wholesale/internal/pkg/guard"
)

var ErrGetProductsToReorderQueryIsNotConstructed = errors.New(
	"GetProductsToReorderQuery must be created via NewGetProductsToReorderQuery constructor",
)

// GetProductsToReorderQuery finds available products whose free units
// (in stock minus on order) have fallen to their reorder level or below.
// This is a parameterless query.
type GetProductsToReorderQuery struct {
	guard guard.ConstructorGuard
}

func NewGetProductsToReorderQuery() GetProductsToReorderQuery {
	return GetProductsToReorderQuery{guard: guard.NewConstructorGuard()}
}

func (q GetProductsToReorderQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsToReorderQueryIsNotConstructed)
}

type GetProductsToReorderQueryResponse struct {
	Reference    int
	Name         string
	UnitsInStock int
	UnitsOnOrder int
	ReorderLevel int
}

// FreeUnits may be negative when more is on order than in stock.
func (r GetProductsToReorderQueryResponse) FreeUnits() int {
	return r.UnitsInStock - r.UnitsOnOrder
}
