package models

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a workshop client record. Sales keep their own snapshot of
// these fields, so rows here can be edited or deleted freely.
type Customer struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Phone     string    `gorm:"column:phone;not null" json:"phone"`
	Email     *string   `gorm:"column:email" json:"email"`
	Address   *string   `gorm:"column:address" json:"address"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}
