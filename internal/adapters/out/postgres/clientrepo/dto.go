package clientrepo

import (
	"wholesale/internal/core/domain/model/client"
)

type ClientDTO struct {
	Code    string `gorm:"type:varchar(16);primaryKey"`
	Company string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(255)"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(c *client.Client) ClientDTO {
	return ClientDTO{
		Code:    c.Code(),
		Company: c.Company(),
		Address: c.Address(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	return client.RestoreClient(dto.Code, dto.Company, dto.Address)
}
