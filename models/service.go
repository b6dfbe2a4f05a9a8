package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a catalog entry for a purchasable extra. The active flag gates
// visibility to new requests only; historical requests keep referencing
// deactivated services.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServiceName string          `gorm:"column:service_name;size:255" json:"serviceName"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Category    string          `gorm:"size:64" json:"category"`
	IsActive    bool            `gorm:"column:is_active" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
