package cart

import (
  "testing"

  "github.com/google/uuid"
)

func supplierRef(id uuid.UUID) *uuid.UUID {
  return &id
}

func TestAddRejectsMixedSuppliers(t *testing.T) {
  sup1 := uuid.New()
  sup2 := uuid.New()
  itemA := LineItem{ItemID: uuid.New(), Name: "Item A", SupplierID: supplierRef(sup1), UnitPrice: 10.00}
  itemB := LineItem{ItemID: uuid.New(), Name: "Item B", SupplierID: supplierRef(sup2), UnitPrice: 5.00}

  var c Cart
  if err := c.Add(itemA); err != nil {
    t.Fatalf("Add(itemA) error: %v", err)
  }
  if err := c.Add(itemB); err != ErrMixedSupplier {
    t.Fatalf("Add(itemB) error = %v, want ErrMixedSupplier", err)
  }
  if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
    t.Fatalf("cart corrupted by rejected add: %+v", c.Lines)
  }
  if got := c.Total(); got != 10.00 {
    t.Fatalf("Total=%v, want 10.00", got)
  }

  // After clearing, the other supplier becomes legal.
  c.Clear()
  if err := c.Add(itemB); err != nil {
    t.Fatalf("Add(itemB) after Clear error: %v", err)
  }
}

func TestAddRejectsItemsWithoutSupplier(t *testing.T) {
  var c Cart
  err := c.Add(LineItem{ItemID: uuid.New(), Name: "orphan", UnitPrice: 1})
  if err != ErrNoSupplier {
    t.Fatalf("Add error = %v, want ErrNoSupplier", err)
  }
  nilID := uuid.Nil
  err = c.Add(LineItem{ItemID: uuid.New(), Name: "nil supplier", SupplierID: &nilID})
  if err != ErrNoSupplier {
    t.Fatalf("Add error = %v, want ErrNoSupplier", err)
  }
}

func TestAddIncrementsExistingLineWithCap(t *testing.T) {
  sup := uuid.New()
  item := LineItem{ItemID: uuid.New(), Name: "repeat", SupplierID: supplierRef(sup), UnitPrice: 2}

  var c Cart
  for i := 0; i < MaxQuantity+10; i++ {
    if err := c.Add(item); err != nil {
      t.Fatalf("Add #%d error: %v", i, err)
    }
  }
  if len(c.Lines) != 1 {
    t.Fatalf("expected a single line, got %d", len(c.Lines))
  }
  if c.Lines[0].Quantity != MaxQuantity {
    t.Fatalf("Quantity=%d, want cap %d", c.Lines[0].Quantity, MaxQuantity)
  }
}

func TestSetQuantityClampAndRemoval(t *testing.T) {
  sup := uuid.New()
  itemID := uuid.New()

  cases := []struct {
    name      string
    qty       int
    wantQty   int
    wantGone  bool
  }{
    {name: "in_range", qty: 42, wantQty: 42},
    {name: "upper_bound", qty: 999, wantQty: 999},
    {name: "above_cap_clamps", qty: 1500, wantQty: 999},
    {name: "zero_removes", qty: 0, wantGone: true},
    {name: "negative_clamps_to_zero_and_removes", qty: -5, wantGone: true},
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      var c Cart
      if err := c.Add(LineItem{ItemID: itemID, Name: "x", SupplierID: supplierRef(sup), UnitPrice: 1}); err != nil {
        t.Fatalf("Add error: %v", err)
      }
      c.SetQuantity(itemID, tc.qty)
      if tc.wantGone {
        if !c.Empty() {
          t.Fatalf("expected line removed, cart=%+v", c.Lines)
        }
        return
      }
      if len(c.Lines) != 1 || c.Lines[0].Quantity != tc.wantQty {
        t.Fatalf("cart=%+v, want quantity %d", c.Lines, tc.wantQty)
      }
    })
  }
}

func TestSetQuantityUnknownItemIsIgnored(t *testing.T) {
  sup := uuid.New()
  var c Cart
  if err := c.Add(LineItem{ItemID: uuid.New(), Name: "x", SupplierID: supplierRef(sup), UnitPrice: 1}); err != nil {
    t.Fatalf("Add error: %v", err)
  }
  c.SetQuantity(uuid.New(), 7)
  if len(c.Lines) != 1 || c.Lines[0].Quantity != 1 {
    t.Fatalf("cart changed by unknown item id: %+v", c.Lines)
  }
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
  sup := uuid.New()
  itemID := uuid.New()

  var c Cart
  if err := c.Add(LineItem{ItemID: itemID, Name: "x", SupplierID: supplierRef(sup), UnitPrice: 3}); err != nil {
    t.Fatalf("Add error: %v", err)
  }
  c.SetQuantity(itemID, 5)
  c.Increment(itemID)
  c.Decrement(itemID)
  if c.Lines[0].Quantity != 5 {
    t.Fatalf("Quantity=%d after increment+decrement, want 5", c.Lines[0].Quantity)
  }

  // Decrementing to zero removes the line.
  c.SetQuantity(itemID, 1)
  c.Decrement(itemID)
  if !c.Empty() {
    t.Fatalf("expected empty cart, got %+v", c.Lines)
  }
}

func TestTotal(t *testing.T) {
  sup := uuid.New()
  var c Cart
  if got := c.Total(); got != 0 {
    t.Fatalf("empty cart Total=%v, want 0", got)
  }

  first := uuid.New()
  second := uuid.New()
  if err := c.Add(LineItem{ItemID: first, Name: "a", SupplierID: supplierRef(sup), UnitPrice: 10.00}); err != nil {
    t.Fatalf("Add error: %v", err)
  }
  if err := c.Add(LineItem{ItemID: second, Name: "b", SupplierID: supplierRef(sup), UnitPrice: 2.50}); err != nil {
    t.Fatalf("Add error: %v", err)
  }
  c.SetQuantity(first, 3)
  c.SetQuantity(second, 4)
  if got := c.Total(); got != 40.00 {
    t.Fatalf("Total=%v, want 40.00", got)
  }
}

func TestSupplierID(t *testing.T) {
  var c Cart
  if _, ok := c.SupplierID(); ok {
    t.Fatal("empty cart should report no supplier")
  }
  sup := uuid.New()
  if err := c.Add(LineItem{ItemID: uuid.New(), Name: "x", SupplierID: supplierRef(sup), UnitPrice: 1}); err != nil {
    t.Fatalf("Add error: %v", err)
  }
  got, ok := c.SupplierID()
  if !ok || got != sup {
    t.Fatalf("SupplierID=(%v,%v), want (%v,true)", got, ok, sup)
  }
}
