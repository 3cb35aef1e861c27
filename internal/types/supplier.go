package types

import (
  "time"
  "github.com/google/uuid"
)

type Supplier struct {
  ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
  Name          string      `gorm:"not null;column:name" json:"name"`
  ContactEmail  string      `gorm:"column:contact_email" json:"contact_email"`
  Address       string      `gorm:"column:address" json:"address"`
  CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (Supplier) TableName() string {
  return "supplier"
}
