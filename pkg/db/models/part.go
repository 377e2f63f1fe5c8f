package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Part is a spare part in inventory. Stock is adjusted with relative
// updates and may go negative; no floor is enforced.
type Part struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"column:name;not null" json:"name"`
	Description   *string         `gorm:"column:description" json:"description"`
	ReferenceCode string          `gorm:"column:reference_code;not null" json:"reference_code"`
	CostPrice     decimal.Decimal `gorm:"column:cost_price;type:numeric(12,2);not null" json:"cost_price"`
	SalePrice     decimal.Decimal `gorm:"column:sale_price;type:numeric(12,2);not null" json:"sale_price"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
