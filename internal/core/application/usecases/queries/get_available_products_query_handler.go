package queries

import (
	"context"

	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle returns products ordered by reference. Stock is compared as stored,
// without subtracting units already on order.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) (result []GetAvailableProductsQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetAvailableProducts")
	span.SetAttributes(attribute.Int("product.min_stock", query.MinStock()))
	defer func() { telemetry.EndSpan(span, err) }()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			name,
			category_code,
			unit_price,
			quantity_per_unit,
			units_in_stock
		FROM products
		WHERE unavailable = FALSE AND units_in_stock > ?
		ORDER BY reference
	`, query.MinStock()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetAvailableProductsQueryResponse, 0)
	for rows.Next() {
		var p GetAvailableProductsQueryResponse
		err = rows.Scan(
			&p.Reference,
			&p.Name,
			&p.CategoryCode,
			&p.UnitPrice,
			&p.QuantityPerUnit,
			&p.UnitsInStock,
		)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
