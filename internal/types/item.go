package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// Item is a catalog record sourced from the upstream feed. SupplierID may be
// nil when the feed record carried no resolvable supplier; such items can be
// browsed but never added to a cart.
type Item struct {
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  ExternalID    string          `gorm:"uniqueIndex;not null;column:external_id" json:"external_id"`
  SupplierID    *uuid.UUID      `gorm:"type:uuid;column:supplier_id;index" json:"supplier_id,omitempty"`
  Name          string          `gorm:"not null;column:name" json:"name"`
  Price         float64         `gorm:"not null;column:price" json:"price"`
  Category      string          `gorm:"column:category" json:"category"`
  Description   string          `gorm:"column:description" json:"description"`
  Attrs         datatypes.JSON  `gorm:"column:attrs" json:"attrs,omitempty"`
  CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (Item) TableName() string {
  return "item"
}
