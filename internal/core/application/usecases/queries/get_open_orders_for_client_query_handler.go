package queries

import (
	"context"

	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// GetOpenOrdersForClientQueryHandler reads open orders, newest first. Order
// numbers are assigned in increasing order, so newest means highest number.
type GetOpenOrdersForClientQueryHandler struct {
	db *gorm.DB
}

func NewGetOpenOrdersForClientQueryHandler(db *gorm.DB) GetOpenOrdersForClientQueryHandler {
	return GetOpenOrdersForClientQueryHandler{db: db}
}

// Handle returns an empty slice for an unknown client.
func (h GetOpenOrdersForClientQueryHandler) Handle(
	ctx context.Context,
	query GetOpenOrdersForClientQuery,
) (result []GetOpenOrdersForClientQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetOpenOrdersForClient")
	span.SetAttributes(attribute.String("client.code", query.ClientCode()))
	defer func() { telemetry.EndSpan(span, err) }()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.number,
			o.delivery_address,
			o.discount,
			COUNT(l.id),
			COALESCE(SUM(l.quantity), 0)::bigint
		FROM orders o
		LEFT JOIN order_lines l ON l.order_number = o.number
		WHERE o.client_code = ? AND o.shipped_on IS NULL
		GROUP BY o.number, o.delivery_address, o.discount
		ORDER BY o.number DESC
	`, query.ClientCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOpenOrdersForClientQueryResponse, 0)
	for rows.Next() {
		var o GetOpenOrdersForClientQueryResponse
		if err = rows.Scan(&o.Number, &o.DeliveryAddress, &o.Discount, &o.LineCount, &o.TotalQuantity); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
