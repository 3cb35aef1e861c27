// Package cart holds the single-supplier cart and its mutation rules. The
// cart is transient session state: it lives in a Store (redis or in-process),
// never in postgres.
package cart

import (
  "errors"

  "github.com/google/uuid"
)

const MaxQuantity = 999

var (
  // ErrNoSupplier rejects items that carry no resolvable supplier id.
  ErrNoSupplier = errors.New("item has no supplier and cannot be ordered")
  // ErrMixedSupplier rejects adding an item from a different supplier while
  // the cart is non-empty. One cart, one supplier.
  ErrMixedSupplier = errors.New("cart already contains items from another supplier")
)

// Line references one catalog item. UnitPrice is the price at add time.
type Line struct {
  ItemID     uuid.UUID   `json:"item_id"`
  Name       string      `json:"name"`
  SupplierID uuid.UUID   `json:"supplier_id"`
  UnitPrice  float64     `json:"unit_price"`
  Quantity   int         `json:"quantity"`
}

// Cart keeps lines in insertion order; order matters for display only.
type Cart struct {
  Lines []Line `json:"lines"`
}

// LineItem is the subset of a catalog item the cart needs.
type LineItem struct {
  ItemID     uuid.UUID
  Name       string
  SupplierID *uuid.UUID
  UnitPrice  float64
}

// Add appends a new line with quantity 1 or bumps an existing line by 1,
// capped at MaxQuantity. All lines must share one supplier.
func (c *Cart) Add(item LineItem) error {
  if item.SupplierID == nil || *item.SupplierID == uuid.Nil {
    return ErrNoSupplier
  }
  if sup, ok := c.SupplierID(); ok && sup != *item.SupplierID {
    return ErrMixedSupplier
  }
  for i := range c.Lines {
    if c.Lines[i].ItemID == item.ItemID {
      if c.Lines[i].Quantity < MaxQuantity {
        c.Lines[i].Quantity++
      }
      return nil
    }
  }
  c.Lines = append(c.Lines, Line{
    ItemID:     item.ItemID,
    Name:       item.Name,
    SupplierID: *item.SupplierID,
    UnitPrice:  item.UnitPrice,
    Quantity:   1,
  })
  return nil
}

// SetQuantity clamps qty into [0, MaxQuantity]; 0 removes the line. Unknown
// item ids are ignored.
func (c *Cart) SetQuantity(itemID uuid.UUID, qty int) {
  if qty < 0 {
    qty = 0
  }
  if qty > MaxQuantity {
    qty = MaxQuantity
  }
  for i := range c.Lines {
    if c.Lines[i].ItemID != itemID {
      continue
    }
    if qty == 0 {
      c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
      return
    }
    c.Lines[i].Quantity = qty
    return
  }
}

func (c *Cart) Increment(itemID uuid.UUID) {
  for i := range c.Lines {
    if c.Lines[i].ItemID == itemID {
      c.SetQuantity(itemID, c.Lines[i].Quantity+1)
      return
    }
  }
}

func (c *Cart) Decrement(itemID uuid.UUID) {
  for i := range c.Lines {
    if c.Lines[i].ItemID == itemID {
      c.SetQuantity(itemID, c.Lines[i].Quantity-1)
      return
    }
  }
}

func (c *Cart) Clear() {
  c.Lines = nil
}

func (c *Cart) Empty() bool {
  return len(c.Lines) == 0
}

// Total sums price x quantity over all lines. Negative prices or quantities
// contribute zero rather than poisoning the sum.
func (c *Cart) Total() float64 {
  var total float64
  for _, line := range c.Lines {
    if line.UnitPrice < 0 || line.Quantity < 0 {
      continue
    }
    total += line.UnitPrice * float64(line.Quantity)
  }
  return total
}

// SupplierID reports the shared supplier id. The invariant guarantees every
// line agrees, so the first line is as good a reference as any.
func (c *Cart) SupplierID() (uuid.UUID, bool) {
  if len(c.Lines) == 0 {
    return uuid.Nil, false
  }
  return c.Lines[0].SupplierID, true
}
