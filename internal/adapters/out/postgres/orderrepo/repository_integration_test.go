package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"wholesale/internal/adapters/out/postgres/orderrepo"
	"wholesale/internal/adapters/out/postgres/pgtest"
	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type OrderRepositoryTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
	client    *client.Client
}

func (s *OrderRepositoryTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	s.container = container
	s.Require().NoError(err)
	s.db = db
	s.repo = orderrepo.NewGormOrderRepository(db)
}

func (s *OrderRepositoryTestSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *OrderRepositoryTestSuite) SetupTest() {
	s.Require().NoError(pgtest.Truncate(s.db))

	c, err := pgtest.SeedClient(context.Background(), s.db, "VINET", "Vins et alcools Chevalier", "59 rue de l'Abbaye")
	s.Require().NoError(err)
	s.client = c
}

func (s *OrderRepositoryTestSuite) TestAdd_AssignsIncreasingNumbers() {
	ctx := context.Background()
	first, err := order.NewOrder(s.client, kernel.NoDiscount())
	s.Require().NoError(err)
	second, err := order.NewOrder(s.client, kernel.NoDiscount())
	s.Require().NoError(err)

	s.Require().NoError(s.repo.Add(ctx, first))
	s.Require().NoError(s.repo.Add(ctx, second))

	s.Positive(first.Number())
	s.Greater(second.Number(), first.Number())
}

func (s *OrderRepositoryTestSuite) TestGet_RestoresHeaderAndLinesInInsertionOrder() {
	ctx := context.Background()
	chai, err := pgtest.SeedProduct(ctx, s.db, "Chai", 100, 0)
	s.Require().NoError(err)
	chang, err := pgtest.SeedProduct(ctx, s.db, "Chang", 100, 0)
	s.Require().NoError(err)

	discount, err := kernel.NewDiscountRate(decimal.RequireFromString("0.15"))
	s.Require().NoError(err)
	o, err := order.NewOrder(s.client, discount)
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, o))

	for _, add := range []struct {
		ref int
		qty int
	}{{chang.Reference(), 3}, {chai.Reference(), 7}} {
		l, lineErr := o.AddLine(add.ref, kernel.MustNewQuantity(add.qty))
		s.Require().NoError(lineErr)
		s.Require().NoError(s.repo.AddLine(ctx, l))
		s.Positive(l.ID())
	}

	loaded, err := s.repo.Get(ctx, o.Number())

	s.Require().NoError(err)
	s.Equal("VINET", loaded.ClientCode())
	s.Equal("59 rue de l'Abbaye", loaded.DeliveryAddress())
	s.True(discount.Equal(loaded.Discount()))
	s.False(loaded.IsShipped())
	s.Require().Len(loaded.Lines(), 2)
	s.Equal(chang.Reference(), loaded.Lines()[0].ProductReference())
	s.Equal(3, loaded.Lines()[0].Quantity().Int())
	s.Equal(chai.Reference(), loaded.Lines()[1].ProductReference())
	s.Equal(10, loaded.TotalQuantity())
}

func (s *OrderRepositoryTestSuite) TestUpdate_StoresShipmentDate() {
	ctx := context.Background()
	o, err := order.NewOrder(s.client, kernel.NoDiscount())
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, o))

	s.Require().NoError(o.Ship(time.Date(2024, 3, 9, 17, 45, 0, 0, time.UTC)))
	s.Require().NoError(s.repo.Update(ctx, o))

	loaded, err := s.repo.GetForUpdate(ctx, o.Number())

	s.Require().NoError(err)
	s.Require().NotNil(loaded.ShippedOn())
	s.Equal("2024-03-09", loaded.ShippedOn().Format(time.DateOnly))
	s.Equal(order.Shipped, loaded.Status())
}

func (s *OrderRepositoryTestSuite) TestGet_Unknown() {
	_, err := s.repo.Get(context.Background(), 10248)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = s.repo.GetForUpdate(context.Background(), 10248)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *OrderRepositoryTestSuite) TestAddLine_UnknownProductViolatesForeignKey() {
	ctx := context.Background()
	o, err := order.NewOrder(s.client, kernel.NoDiscount())
	s.Require().NoError(err)
	s.Require().NoError(s.repo.Add(ctx, o))

	l, err := o.AddLine(777, kernel.MustNewQuantity(1))
	s.Require().NoError(err)

	s.Require().Error(s.repo.AddLine(ctx, l))
}

func TestOrderRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryTestSuite))
}
