package queries

import (
	"errors"
	"fmt"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"
)

var ErrGetUnitsSoldByCategoryQueryIsNotConstructed = errors.New(
	"GetUnitsSoldByCategoryQuery must be created via NewGetUnitsSoldByCategoryQuery constructor",
)

// GetUnitsSoldByCategoryQuery totals ordered quantities per product of one
// category. Lines of open and shipped orders both count.
type GetUnitsSoldByCategoryQuery struct {
	categoryCode int

	guard guard.ConstructorGuard
}

func NewGetUnitsSoldByCategoryQuery(categoryCode int) (GetUnitsSoldByCategoryQuery, error) {
	if categoryCode <= 0 {
		return GetUnitsSoldByCategoryQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"category code is invalid",
			fmt.Errorf("%d is not greater than 0", categoryCode),
		)
	}

	return GetUnitsSoldByCategoryQuery{
		categoryCode: categoryCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetUnitsSoldByCategoryQuery) Validate() error {
	return q.guard.Validate(ErrGetUnitsSoldByCategoryQueryIsNotConstructed)
}

func (q GetUnitsSoldByCategoryQuery) CategoryCode() int {
	return q.categoryCode
}

type GetUnitsSoldByCategoryQueryResponse struct {
	ProductName string
	UnitsSold   int
}
