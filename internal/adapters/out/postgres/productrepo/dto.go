package productrepo

import (
	"wholesale/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// CategoryDTO is a catalog category. Products reference it by code only.
type CategoryDTO struct {
	Code        int    `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description string `gorm:"type:text"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type ProductDTO struct {
	Reference       int             `gorm:"primaryKey;autoIncrement"`
	Name            string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	CategoryCode    int             `gorm:"not null;index"`
	Category        *CategoryDTO    `gorm:"foreignKey:CategoryCode;references:Code"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(10,4);not null"`
	QuantityPerUnit string          `gorm:"type:varchar(255)"`
	UnitsInStock    int             `gorm:"type:int;not null"`
	UnitsOnOrder    int             `gorm:"type:int;not null"`
	ReorderLevel    int             `gorm:"type:int;not null"`
	Unavailable     bool            `gorm:"not null"`
}

func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		Reference:       p.Reference(),
		Name:            p.Name(),
		CategoryCode:    p.CategoryCode(),
		UnitPrice:       p.UnitPrice(),
		QuantityPerUnit: p.QuantityPerUnit(),
		UnitsInStock:    p.UnitsInStock(),
		UnitsOnOrder:    p.UnitsOnOrder(),
		ReorderLevel:    p.ReorderLevel(),
		Unavailable:     p.IsUnavailable(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(product.State{
		Reference:       dto.Reference,
		Name:            dto.Name,
		CategoryCode:    dto.CategoryCode,
		UnitPrice:       dto.UnitPrice,
		QuantityPerUnit: dto.QuantityPerUnit,
		UnitsInStock:    dto.UnitsInStock,
		UnitsOnOrder:    dto.UnitsOnOrder,
		ReorderLevel:    dto.ReorderLevel,
		Unavailable:     dto.Unavailable,
	})
}
