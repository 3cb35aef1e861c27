package types

import (
  "time"
  "github.com/google/uuid"
)

const (
  PaymentMethodCash = "cash"
  PaymentMethodCard = "card"
  PaymentMethodBank = "bank"
)

// Order status is an opaque string displayed as-is; no state machine is
// enforced here. Comparisons are case-insensitive at the edges that care.
type Order struct {
  ID               uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
  SupplierID       uuid.UUID    `gorm:"type:uuid;not null;column:supplier_id;index" json:"supplier_id"`
  SupermarketID    uuid.UUID    `gorm:"type:uuid;not null;column:supermarket_id;index" json:"supermarket_id"`
  Status           string       `gorm:"not null;column:status" json:"status"`
  TotalAmount      float64      `gorm:"not null;column:total_amount" json:"total_amount"`
  DeliveryAddress  string       `gorm:"not null;column:delivery_address" json:"delivery_address"`
  DeliveryDate     *time.Time   `gorm:"column:delivery_date" json:"delivery_date,omitempty"`
  PaymentMethod    string       `gorm:"not null;column:payment_method" json:"payment_method"`
  Note             string       `gorm:"column:note" json:"note,omitempty"`
  Items            []OrderItem  `gorm:"foreignKey:OrderID;references:ID" json:"items"`
  CreatedAt        time.Time    `gorm:"not null;index" json:"created_at"`
  UpdatedAt        time.Time    `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string {
  return "order"
}
