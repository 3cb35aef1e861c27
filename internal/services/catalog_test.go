package services

import (
  "context"
  "net/http"
  "net/http/httptest"
  "testing"

  "github.com/yungbote/supplycart-backend/internal/clients/catalogfeed"
  "github.com/yungbote/supplycart-backend/internal/repos"
)

func TestItemUUIDStable(t *testing.T) {
  if ItemUUID("itm-1") != ItemUUID("itm-1") {
    t.Fatal("ItemUUID not stable for the same external id")
  }
  if ItemUUID("itm-1") == ItemUUID("itm-2") {
    t.Fatal("ItemUUID collides for distinct external ids")
  }
  // A feed id that already is a uuid passes through unchanged.
  raw := "0b8471a2-5f4e-4c86-9d9b-0c6a3e6c3f21"
  if ItemUUID(raw).String() != raw {
    t.Fatalf("uuid feed id not passed through: %v", ItemUUID(raw))
  }
}

func TestCatalogSyncAndList(t *testing.T) {
  db := newTestDB(t)
  log := newTestLogger(t)
  itemRepo := repos.NewItemRepo(db, log)
  supplierRepo := repos.NewSupplierRepo(db, log)

  feedBody := `{"items":[
    {"id":"itm-1","name":"Apples","price":10,"category":"produce","supplierId":"sup-1"},
    {"id":"itm-2","name":"Bread Flour","unit_price":"4.5","category":"baking","vendor_id":"sup-1"},
    {"id":"itm-3","name":"Orphan","price":1}
  ]}`
  srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.Write([]byte(feedBody))
  }))
  defer srv.Close()

  feed, err := catalogfeed.NewClient(log, srv.URL)
  if err != nil {
    t.Fatalf("NewClient: %v", err)
  }
  svc := NewCatalogService(db, log, feed, itemRepo, supplierRepo)

  count, err := svc.Sync(context.Background())
  if err != nil {
    t.Fatalf("Sync: %v", err)
  }
  if count != 3 {
    t.Fatalf("Sync count=%d, want 3", count)
  }

  // Second sync with a new price updates in place instead of duplicating.
  feedBody = `[{"id":"itm-1","name":"Apples","price":12,"category":"produce","supplierId":"sup-1"}]`
  if _, err := svc.Sync(context.Background()); err != nil {
    t.Fatalf("second Sync: %v", err)
  }

  all, err := svc.List(context.Background(), "")
  if err != nil {
    t.Fatalf("List: %v", err)
  }
  if len(all) != 3 {
    t.Fatalf("List returned %d items, want 3", len(all))
  }
  for _, item := range all {
    if item.ExternalID == "itm-1" && item.Price != 12 {
      t.Fatalf("itm-1 price=%v after resync, want 12", item.Price)
    }
    if item.ExternalID == "itm-3" && item.SupplierID != nil {
      t.Fatalf("itm-3 should have no supplier, got %v", item.SupplierID)
    }
  }

  filtered, err := svc.List(context.Background(), "flour")
  if err != nil {
    t.Fatalf("List(flour): %v", err)
  }
  if len(filtered) != 1 || filtered[0].ExternalID != "itm-2" {
    t.Fatalf("List(flour)=%+v, want just itm-2", filtered)
  }

  byCategory, err := svc.List(context.Background(), "BAKING")
  if err != nil {
    t.Fatalf("List(BAKING): %v", err)
  }
  if len(byCategory) != 1 {
    t.Fatalf("case-insensitive category filter returned %d items, want 1", len(byCategory))
  }
}
