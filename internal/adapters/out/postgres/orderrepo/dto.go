package orderrepo

import (
	"time"

	"wholesale/internal/adapters/out/postgres/clientrepo"
	"wholesale/internal/adapters/out/postgres/productrepo"
	"wholesale/internal/core/domain/model/kernel"
	"wholesale/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	Number          int                   `gorm:"primaryKey;autoIncrement"`
	ClientCode      string                `gorm:"type:varchar(16);not null;index"`
	Client          *clientrepo.ClientDTO `gorm:"foreignKey:ClientCode;references:Code"`
	DeliveryAddress string                `gorm:"type:varchar(255)"`
	Discount        decimal.Decimal       `gorm:"type:decimal(5,4);not null"`
	ShippedOn       *time.Time            `gorm:"type:date;index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO rows are deleted with their order.
type LineDTO struct {
	ID               int                     `gorm:"primaryKey;autoIncrement"`
	OrderNumber      int                     `gorm:"not null;index"`
	Order            *OrderDTO               `gorm:"foreignKey:OrderNumber;references:Number;constraint:OnDelete:CASCADE"`
	ProductReference int                     `gorm:"not null;index"`
	Product          *productrepo.ProductDTO `gorm:"foreignKey:ProductReference;references:Reference"`
	Quantity         int                     `gorm:"type:int;not null;check:chk_order_lines_quantity,quantity > 0"`
}

func (LineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		Number:          o.Number(),
		ClientCode:      o.ClientCode(),
		DeliveryAddress: o.DeliveryAddress(),
		Discount:        o.Discount().Decimal(),
		ShippedOn:       o.ShippedOn(),
	}
}

func lineFromDomain(l *order.Line) LineDTO {
	return LineDTO{
		ID:               l.ID(),
		OrderNumber:      l.OrderNumber(),
		ProductReference: l.ProductReference(),
		Quantity:         l.Quantity().Int(),
	}
}

func toDomain(dto OrderDTO, lineDTOs []LineDTO) (*order.Order, error) {
	discount, err := kernel.NewDiscountRate(dto.Discount)
	if err != nil {
		return nil, err
	}

	var shippedOn *time.Time
	if dto.ShippedOn != nil {
		d := dto.ShippedOn.UTC()
		shippedOn = &d
	}

	lines := make([]*order.Line, 0, len(lineDTOs))
	for _, l := range lineDTOs {
		line, lineErr := order.RestoreLine(l.ID, l.OrderNumber, l.ProductReference, l.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(dto.Number, dto.ClientCode, dto.DeliveryAddress, discount, shippedOn, lines)
}
