package postgres

import (
	"fmt"

	"wholesale/internal/adapters/out/postgres/clientrepo"
	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/productrepo"

	"gorm.io/gorm"
)

// Models lists the persisted tables in foreign key order.
func Models() []any {
	return []any{
		&productrepo.CategoryDTO{},
		&clientrepo.ClientDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
