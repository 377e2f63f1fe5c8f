package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemType discriminates part and service line items.
type SaleItemType string

const (
	SaleItemTypePart    SaleItemType = "part"
	SaleItemTypeService SaleItemType = "service"
)

// SaleItem is one line of a sale. Price, quantity and subtotal are
// taken as submitted by the point of sale and never recomputed, so a
// zero quantity is as acceptable as a zero price.
type SaleItem struct {
	Type     SaleItemType    `json:"type" validate:"required,oneof=part service"`
	ItemID   uuid.UUID       `json:"id" validate:"required"`
	Name     string          `json:"name" validate:"required"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// SaleItemList stores the ordered line items as one JSON document, the
// way the sale keeps everything needed to render itself.
type SaleItemList []SaleItem

func (l SaleItemList) Value() (driver.Value, error) {
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("encoding sale items: %w", err)
	}
	return string(raw), nil
}

func (l *SaleItemList) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(val, l)
	case string:
		return json.Unmarshal([]byte(val), l)
	default:
		return fmt.Errorf("unsupported sale items source %T", src)
	}
}

// CustomerSnapshot freezes the customer's contact data at sale time so
// later edits or deletes of the customer do not change past sales.
type CustomerSnapshot struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (s CustomerSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encoding customer snapshot: %w", err)
	}
	return string(raw), nil
}

func (s *CustomerSnapshot) Scan(src any) error {
	switch val := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(val, s)
	case string:
		return json.Unmarshal([]byte(val), s)
	default:
		return fmt.Errorf("unsupported customer snapshot source %T", src)
	}
}

// Sale is an immutable point-of-sale record. There is no update or
// delete path; customer_id may dangle once the customer is removed.
type Sale struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SaleNumber       string            `gorm:"column:sale_number;not null;index" json:"sale_number"`
	Date             time.Time         `gorm:"column:date;not null;index" json:"date"`
	CustomerID       *uuid.UUID        `gorm:"column:customer_id;type:uuid" json:"customer_id"`
	CustomerData     *CustomerSnapshot `gorm:"column:customer_data;type:jsonb" json:"customer_data"`
	Items            SaleItemList      `gorm:"column:items;type:jsonb;not null" json:"items"`
	SubtotalParts    decimal.Decimal   `gorm:"column:subtotal_parts;type:numeric(12,2);not null" json:"subtotal_parts"`
	SubtotalServices decimal.Decimal   `gorm:"column:subtotal_services;type:numeric(12,2);not null" json:"subtotal_services"`
	Total            decimal.Decimal   `gorm:"column:total;type:numeric(12,2);not null" json:"total"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}
