package clientrepo

import (
	"context"
	"errors"

	"wholesale/internal/adapters/out/postgres/pgerr"
	"wholesale/internal/core/domain/model/client"
	"wholesale/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormClientRepository struct {
	db *gorm.DB
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{db: db}
}

func (r *GormClientRepository) Add(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	return pgerr.Translate("add client", r.db.WithContext(ctx).Create(&dto).Error)
}

func (r *GormClientRepository) Get(ctx context.Context, code string) (*client.Client, error) {
	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client code", code)
		}
		return nil, pgerr.Translate("get client", err)
	}

	return toDomain(dto)
}

// SumOrderedQuantities counts every article the client ever ordered.
// The sum reads committed lines at statement time and takes no locks.
func (r *GormClientRepository) SumOrderedQuantities(ctx context.Context, code string) (int, error) {
	var total int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(l.quantity), 0)::bigint
		FROM order_lines l
		JOIN orders o ON o.number = l.order_number
		WHERE o.client_code = ?
	`, code).Scan(&total).Error
	if err != nil {
		return 0, pgerr.Translate("sum ordered quantities", err)
	}

	return total, nil
}
