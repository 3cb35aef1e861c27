package types

import (
  "time"
  "github.com/google/uuid"
)

// Supermarket is the buyer directory record joined into supplier-side
// aggregations. A missing row must never abort an aggregation; callers
// substitute placeholder fields instead.
type Supermarket struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Name          string      `gorm:"not null;column:name" json:"name"`
  ContactEmail  string      `gorm:"column:contact_email" json:"contact_email"`
  Address       string      `gorm:"column:address" json:"address"`
  CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (Supermarket) TableName() string {
  return "supermarket"
}
