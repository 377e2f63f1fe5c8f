package models

import (
	"time"

	dbtypes "github.com/dmoreira/workshop-backend/pkg/db/types"
	"github.com/google/uuid"
)

// Setting is one key of the open-schema configuration store. Values are
// opaque JSON documents; only the low-stock threshold is ever parsed.
type Setting struct {
	ID        uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Key       string            `gorm:"column:key;not null;uniqueIndex" json:"key"`
	Value     dbtypes.JSONValue `gorm:"column:value;type:jsonb" json:"value"`
	UpdatedAt time.Time         `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
