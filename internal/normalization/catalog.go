package normalization

import (
  "fmt"
  "math"
  "strconv"
  "strings"
)

// CatalogItem is the canonical shape every upstream feed record is mapped
// into, regardless of which alias the source used for each field. Downstream
// code never sees the raw keys.
type CatalogItem struct {
  ExternalID  string
  Name        string
  Price       float64
  Category    string
  Description string
  SupplierID  string
}

var (
  itemIDAliases      = []string{"id", "itemId", "item_id", "_id", "sku"}
  itemNameAliases    = []string{"name", "title", "productName", "product_name"}
  itemPriceAliases   = []string{"price", "unitPrice", "unit_price", "amount"}
  itemCatAliases     = []string{"category", "categoryName", "category_name"}
  itemDescAliases    = []string{"description", "desc", "details"}
  supplierIDAliases  = []string{"supplierId", "supplier_id", "vendorId", "vendor_id", "ownerId", "owner_id"}
  supplierObjAliases = []string{"supplier", "vendor", "owner"}
)

// NormalizeItem maps one raw feed record into the canonical CatalogItem.
// The supplier id may be absent; that is legal here and rejected later by
// the cart, not at ingestion.
func NormalizeItem(raw map[string]any) (CatalogItem, error) {
  if raw == nil {
    return CatalogItem{}, fmt.Errorf("nil catalog record")
  }
  externalID := StringField(raw, itemIDAliases...)
  if externalID == "" {
    return CatalogItem{}, fmt.Errorf("catalog record has no id field")
  }
  price, ok := NumberField(raw, itemPriceAliases...)
  if !ok || price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
    price = 0
  }
  return CatalogItem{
    ExternalID:  externalID,
    Name:        StringField(raw, itemNameAliases...),
    Price:       price,
    Category:    StringField(raw, itemCatAliases...),
    Description: StringField(raw, itemDescAliases...),
    SupplierID:  supplierIDField(raw),
  }, nil
}

func supplierIDField(raw map[string]any) string {
  if id := StringField(raw, supplierIDAliases...); id != "" {
    return id
  }
  for _, key := range supplierObjAliases {
    if obj, ok := raw[key].(map[string]any); ok {
      if id := StringField(obj, "id", "_id"); id != "" {
        return id
      }
    }
  }
  return ""
}

// StringField returns the first non-empty string value found under the given
// keys. Numeric values are stringified, anything else is skipped.
func StringField(raw map[string]any, keys ...string) string {
  for _, key := range keys {
    switch v := raw[key].(type) {
    case string:
      if s := strings.TrimSpace(v); s != "" {
        return s
      }
    case float64:
      return strconv.FormatFloat(v, 'f', -1, 64)
    case int:
      return strconv.Itoa(v)
    }
  }
  return ""
}

// NumberField returns the first numeric value found under the given keys.
func NumberField(raw map[string]any, keys ...string) (float64, bool) {
  for _, key := range keys {
    switch v := raw[key].(type) {
    case float64:
      return v, true
    case int:
      return float64(v), true
    case string:
      if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
        return f, true
      }
    }
  }
  return 0, false
}
