// Package pgtest starts a throwaway PostgreSQL for integration tests and seeds
// catalog data through the real repositories.
package pgtest

import (
	"context"
	"fmt"
	"time"

	postgres_adapter "wholesale/internal/adapters/out/postgres"
	"wholesale/internal/adapters/out/postgres/clientrepo"
	"wholesale/internal/adapters/out/postgres/productrepo"
	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Start runs postgres:15-alpine, connects GORM and migrates the schema.
func Start(ctx context.Context) (*postgres.PostgresContainer, *gorm.DB, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return container, nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return container, nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		return container, nil, err
	}

	return container, db, nil
}

// Truncate empties every table and restarts generated keys.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE order_lines, orders, products, categories, clients RESTART IDENTITY CASCADE").Error
}

// SeedClient stores a client.
func SeedClient(ctx context.Context, db *gorm.DB, code, company, address string) (*client.Client, error) {
	c, err := client.RestoreClient(code, company, address)
	if err != nil {
		return nil, err
	}
	if err = clientrepo.NewGormClientRepository(db).Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SeedProduct stores an available product in a new category and returns it
// with its generated reference.
func SeedProduct(ctx context.Context, db *gorm.DB, name string, unitsInStock, reorderLevel int) (*product.Product, error) {
	repo := productrepo.NewGormProductRepository(db)

	category, err := repo.AddCategory(ctx, "Category of "+name, "")
	if err != nil {
		return nil, err
	}

	return SeedProductInCategory(ctx, db, category, name, unitsInStock, reorderLevel)
}

// SeedProductInCategory stores an available product in an existing category.
func SeedProductInCategory(
	ctx context.Context,
	db *gorm.DB,
	category int,
	name string,
	unitsInStock, reorderLevel int,
) (*product.Product, error) {
	p, err := product.NewProduct(name, category, decimal.NewFromInt(10), "1 box", unitsInStock, reorderLevel)
	if err != nil {
		return nil, fmt.Errorf("new product %s: %w", name, err)
	}
	if err = productrepo.NewGormProductRepository(db).Add(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}
