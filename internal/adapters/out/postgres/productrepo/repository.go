package productrepo

import (
	"context"
	"errors"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/product"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// AddCategory creates a category and returns its generated code.
func (r *GormProductRepository) AddCategory(ctx context.Context, name, description string) (int, error) {
	dto := CategoryDTO{Name: name, Description: description}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return 0, pgerr.Translate("add category", err)
	}
	return dto.Code, nil
}

func (r *GormProductRepository) Add(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("add product", err)
	}

	return p.AssignReference(dto.Reference)
}

// Update writes every mutable column, zero values included.
func (r *GormProductRepository) Update(ctx context.Context, p *product.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("reference = ?", dto.Reference).
		Updates(map[string]any{
			"name":              dto.Name,
			"category_code":     dto.CategoryCode,
			"unit_price":        dto.UnitPrice,
			"quantity_per_unit": dto.QuantityPerUnit,
			"units_in_stock":    dto.UnitsInStock,
			"units_on_order":    dto.UnitsOnOrder,
			"reorder_level":     dto.ReorderLevel,
			"unavailable":       dto.Unavailable,
		})
	if result.Error != nil {
		return pgerr.Translate("update product", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product reference", dto.Reference)
	}

	return nil
}

func (r *GormProductRepository) Get(ctx context.Context, reference int) (*product.Product, error) {
	return r.get(r.db.WithContext(ctx), reference, "get product")
}

// GetForUpdate holds the row lock until the surrounding transaction ends.
func (r *GormProductRepository) GetForUpdate(ctx context.Context, reference int) (*product.Product, error) {
	return r.get(
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		reference,
		"lock product",
	)
}

func (r *GormProductRepository) get(db *gorm.DB, reference int, operation string) (*product.Product, error) {
	var dto ProductDTO
	if err := db.First(&dto, "reference = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product reference", reference)
		}
		return nil, pgerr.Translate(operation, err)
	}

	return toDomain(dto)
}
