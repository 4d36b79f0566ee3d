package queries

import (
	"errors"
	"strings"

	"wholesale/internal/pkg/errs"
	"wholesale/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOpenOrdersForClientQueryIsNotConstructed = errors.New(
	"GetOpenOrdersForClientQuery must be created via NewGetOpenOrdersForClientQuery constructor",
)

// GetOpenOrdersForClientQuery lists a client's orders that have not shipped yet.
//
// Example:
//
//	query, err := NewGetOpenOrdersForClientQuery("ALFKI")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
//	for _, o := range orders {
//	    fmt.Printf("order %d: %d units\n", o.Number, o.TotalQuantity)
//	}
type GetOpenOrdersForClientQuery struct {
	clientCode string

	guard guard.ConstructorGuard
}

func NewGetOpenOrdersForClientQuery(clientCode string) (GetOpenOrdersForClientQuery, error) {
	if strings.TrimSpace(clientCode) == "" {
		return GetOpenOrdersForClientQuery{}, errs.NewValueIsRequiredError("client code")
	}

	return GetOpenOrdersForClientQuery{
		clientCode: clientCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersForClientQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersForClientQueryIsNotConstructed)
}

func (q GetOpenOrdersForClientQuery) ClientCode() string {
	return q.clientCode
}

// GetOpenOrdersForClientQueryResponse is one open order. TotalQuantity is zero
// for an order without lines.
type GetOpenOrdersForClientQueryResponse struct {
	Number          int
	DeliveryAddress string
	Discount        decimal.Decimal
	LineCount       int
	TotalQuantity   int
}
