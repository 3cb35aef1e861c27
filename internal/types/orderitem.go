package types

import (
  "time"
  "github.com/google/uuid"
)

// OrderItem snapshots the unit price the buyer saw when the line was added,
// not a live catalog price.
type OrderItem struct {
  ID          uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  OrderID     uuid.UUID   `gorm:"type:uuid;not null;column:order_id;index" json:"order_id"`
  ItemID      uuid.UUID   `gorm:"type:uuid;not null;column:item_id" json:"item_id"`
  Name        string      `gorm:"column:name" json:"name"`
  UnitPrice   float64     `gorm:"not null;column:unit_price" json:"unit_price"`
  Quantity    int         `gorm:"not null;column:quantity" json:"quantity"`
  LineTotal   float64     `gorm:"not null;column:line_total" json:"line_total"`
  CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
}

func (OrderItem) TableName() string {
  return "order_item"
}
