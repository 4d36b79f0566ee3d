package cmd

import (
	"log/slog"

	"wholesale/internal/adapters/out/postgres"
	"wholesale/internal/core/application/usecases/commands"
	"wholesale/internal/core/application/usecases/queries"
	"wholesale/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	retry      commands.RetryPolicy
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, postgres.WithLockTimeout(config.LockTimeout)),
		publisher:  publisher,
		retry:      commands.NewRetryPolicy(config.ConflictRetries, config.ConflictRetryWait),
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.publisher, c.retry, c.logger)
}

func (c *CompositionRoot) CreateAddLineCommandHandler() commands.AddLineCommandHandler {
	return commands.NewAddLineCommandHandler(c.stockUoWFactory(), c.publisher, c.retry, c.logger)
}

func (c *CompositionRoot) CreateRecordShipmentCommandHandler() commands.RecordShipmentCommandHandler {
	return commands.NewRecordShipmentCommandHandler(c.stockUoWFactory(), c.publisher, c.retry, c.logger)
}

func (c *CompositionRoot) CreateGetOpenOrdersForClientQueryHandler() queries.GetOpenOrdersForClientQueryHandler {
	return queries.NewGetOpenOrdersForClientQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnitsSoldByCategoryQueryHandler() queries.GetUnitsSoldByCategoryQueryHandler {
	return queries.NewGetUnitsSoldByCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableProductsQueryHandler() queries.GetAvailableProductsQueryHandler {
	return queries.NewGetAvailableProductsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetProductsToReorderQueryHandler() queries.GetProductsToReorderQueryHandler {
	return queries.NewGetProductsToReorderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}
