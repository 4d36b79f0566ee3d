package orderrepo

import (
	"context"
	"errors"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/order"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("add order", err)
	}

	return aggregate.AssignNumber(dto.Number)
}

// Update writes the order header. Lines are written by AddLine only.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Updates(map[string]any{
			"delivery_address": dto.DeliveryAddress,
			"shipped_on":       dto.ShippedOn,
		})
	if result.Error != nil {
		return pgerr.Translate("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order number", dto.Number)
	}

	return nil
}

func (r *GormOrderRepository) AddLine(ctx context.Context, line *order.Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	dto := lineFromDomain(line)
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&dto).Error; err != nil {
		return pgerr.Translate("add order line", err)
	}

	return line.AssignID(dto.ID)
}

func (r *GormOrderRepository) Get(ctx context.Context, number int) (*order.Order, error) {
	return r.get(ctx, r.db.WithContext(ctx), number, "get order")
}

// GetForUpdate locks the order row only. Lines are immutable and products are
// locked separately, in ascending reference order.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, number int) (*order.Order, error) {
	return r.get(
		ctx,
		r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}),
		number,
		"lock order",
	)
}

func (r *GormOrderRepository) get(ctx context.Context, db *gorm.DB, number int, operation string) (*order.Order, error) {
	var dto OrderDTO
	if err := db.First(&dto, "number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order number", number)
		}
		return nil, pgerr.Translate(operation, err)
	}

	var lines []LineDTO
	if err := r.db.WithContext(ctx).Where("order_number = ?", number).Order("id").Find(&lines).Error; err != nil {
		return nil, pgerr.Translate(operation, err)
	}

	return toDomain(dto, lines)
}
