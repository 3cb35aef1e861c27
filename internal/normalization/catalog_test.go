package normalization

import "testing"

func TestNormalizeItemAliases(t *testing.T) {
  cases := []struct {
    name string
    raw  map[string]any
    want CatalogItem
  }{
    {
      name: "canonical_keys",
      raw: map[string]any{
        "id":          "itm-1",
        "name":        "Apples",
        "price":       float64(10),
        "category":    "produce",
        "description": "crate of apples",
        "supplierId":  "sup-1",
      },
      want: CatalogItem{ExternalID: "itm-1", Name: "Apples", Price: 10, Category: "produce", Description: "crate of apples", SupplierID: "sup-1"},
    },
    {
      name: "snake_case_and_vendor_alias",
      raw: map[string]any{
        "item_id":    "itm-2",
        "title":      "Flour",
        "unit_price": "4.50",
        "vendorId":   "sup-2",
      },
      want: CatalogItem{ExternalID: "itm-2", Name: "Flour", Price: 4.5, SupplierID: "sup-2"},
    },
    {
      name: "nested_supplier_object",
      raw: map[string]any{
        "sku":      "itm-3",
        "name":     "Milk",
        "price":    float64(2),
        "supplier": map[string]any{"id": "sup-3"},
      },
      want: CatalogItem{ExternalID: "itm-3", Name: "Milk", Price: 2, SupplierID: "sup-3"},
    },
    {
      name: "missing_supplier_is_legal",
      raw: map[string]any{
        "id":    "itm-4",
        "name":  "Eggs",
        "price": float64(3),
      },
      want: CatalogItem{ExternalID: "itm-4", Name: "Eggs", Price: 3},
    },
    {
      name: "negative_price_clamped_to_zero",
      raw: map[string]any{
        "id":    "itm-5",
        "name":  "Broken",
        "price": float64(-7),
      },
      want: CatalogItem{ExternalID: "itm-5", Name: "Broken", Price: 0},
    },
  }

  for _, tc := range cases {
    t.Run(tc.name, func(t *testing.T) {
      got, err := NormalizeItem(tc.raw)
      if err != nil {
        t.Fatalf("NormalizeItem returned error: %v", err)
      }
      if got != tc.want {
        t.Fatalf("NormalizeItem=%+v, want %+v", got, tc.want)
      }
    })
  }
}

func TestNormalizeItemRejectsMissingID(t *testing.T) {
  if _, err := NormalizeItem(map[string]any{"name": "nameless"}); err == nil {
    t.Fatal("expected error for record without id")
  }
  if _, err := NormalizeItem(nil); err == nil {
    t.Fatal("expected error for nil record")
  }
}
