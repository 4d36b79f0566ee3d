package queries

import (
	"context"

	"wholesale/internal/pkg/telemetry"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// GetUnitsSoldByCategoryQueryHandler reads sold quantities by product name.
// Products that were never ordered do not appear.
type GetUnitsSoldByCategoryQueryHandler struct {
	db *gorm.DB
}

func NewGetUnitsSoldByCategoryQueryHandler(db *gorm.DB) GetUnitsSoldByCategoryQueryHandler {
	return GetUnitsSoldByCategoryQueryHandler{db: db}
}

func (h GetUnitsSoldByCategoryQueryHandler) Handle(
	ctx context.Context,
	query GetUnitsSoldByCategoryQuery,
) (result []GetUnitsSoldByCategoryQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetUnitsSoldByCategory")
	span.SetAttributes(attribute.Int("category.code", query.CategoryCode()))
	defer func() { telemetry.EndSpan(span, err) }()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.name,
			SUM(l.quantity)::bigint
		FROM products p
		JOIN order_lines l ON l.product_reference = p.reference
		WHERE p.category_code = ?
		GROUP BY p.name
		ORDER BY p.name
	`, query.CategoryCode()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sold := make([]GetUnitsSoldByCategoryQueryResponse, 0)
	for rows.Next() {
		var s GetUnitsSoldByCategoryQueryResponse
		if err = rows.Scan(&s.ProductName, &s.UnitsSold); err != nil {
			return nil, err
		}
		sold = append(sold, s)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sold, nil
}
