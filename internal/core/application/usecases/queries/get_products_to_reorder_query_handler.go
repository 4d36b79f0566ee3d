package queries

import (
	"context"

	"wholesale/internal/pkg/telemetry"

	"gorm.io/gorm"
)

type GetProductsToReorderQueryHandler struct {
	db *gorm.DB
}

func NewGetProductsToReorderQueryHandler(db *gorm.DB) GetProductsToReorderQueryHandler {
	return GetProductsToReorderQueryHandler{db: db}
}

// Handle lists the products with the smallest margin over their reorder
// level first.
func (h GetProductsToReorderQueryHandler) Handle(
	ctx context.Context,
	query GetProductsToReorderQuery,
) (result []GetProductsToReorderQueryResponse, err error) {
	if err = query.Validate(); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "GetProductsToReorder")
	defer func() { telemetry.EndSpan(span, err) }()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			reference,
			name,
			units_in_stock,
			units_on_order,
			reorder_level
		FROM products
		WHERE unavailable = FALSE
			AND units_in_stock - units_on_order <= reorder_level
		ORDER BY units_in_stock - units_on_order - reorder_level, reference
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]GetProductsToReorderQueryResponse, 0)
	for rows.Next() {
		var p GetProductsToReorderQueryResponse
		if err = rows.Scan(&p.Reference, &p.Name, &p.UnitsInStock, &p.UnitsOnOrder, &p.ReorderLevel); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
