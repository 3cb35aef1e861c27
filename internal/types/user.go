package types

import (
  "time"
  "github.com/google/uuid"
)

const (
  RoleSupermarket = "supermarket"
  RoleSupplier    = "supplier"
)

type User struct {
  ID              uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Email           string          `gorm:"uniqueIndex;not null;column:email" json:"email"`
  Password        string          `gorm:"not null;column:password" json:"-"`
  FirstName       string          `gorm:"not null;column:first_name" json:"first_name"`
  LastName        string          `gorm:"not null;column:last_name" json:"last_name"`
  Role            string          `gorm:"not null;column:role;index" json:"role"`
  SupplierID      *uuid.UUID      `gorm:"type:uuid;column:supplier_id;index" json:"supplier_id,omitempty"`
  SupermarketID   *uuid.UUID      `gorm:"type:uuid;column:supermarket_id;index" json:"supermarket_id,omitempty"`
  AvatarPath      string          `gorm:"column:avatar_path" json:"-"`
  AvatarURL       string          `gorm:"column:avatar_url" json:"avatar_url"`
  CreatedAt       time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt       time.Time       `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
  return "user"
}
