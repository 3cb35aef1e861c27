package types

import (
  "time"
  "github.com/google/uuid"
)

// BuyerSummary is computed per request by the supplier aggregation and never
// persisted.
type BuyerSummary struct {
  SupermarketID   uuid.UUID   `json:"supermarket_id"`
  Name            string      `json:"name"`
  ContactEmail    string      `json:"contact_email"`
  Address         string      `json:"address"`
  OrderCount      int64       `json:"order_count"`
  Revenue         float64     `json:"revenue"`
  LastOrderAt     time.Time   `json:"last_order_at"`
}
