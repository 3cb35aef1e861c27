package services

import (
  "context"
  "fmt"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/clients/catalogfeed"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/types"
)

type CatalogService interface {
  Sync(ctx context.Context) (int, error)
  List(ctx context.Context, query string) ([]*types.Item, error)
}

type catalogService struct {
  db           *gorm.DB
  log          *logger.Logger
  feed         *catalogfeed.Client
  itemRepo     repos.ItemRepo
  supplierRepo repos.SupplierRepo
}

func NewCatalogService(db *gorm.DB, log *logger.Logger, feed *catalogfeed.Client, itemRepo repos.ItemRepo, supplierRepo repos.SupplierRepo) CatalogService {
  serviceLog := log.With("service", "CatalogService")
  return &catalogService{
    db:           db,
    log:          serviceLog,
    feed:         feed,
    itemRepo:     itemRepo,
    supplierRepo: supplierRepo,
  }
}

// Sync pulls the upstream feed, normalizes every record and upserts the
// catalog. Feed ids are strings; they map onto stable uuids so repeated
// syncs hit the same rows.
func (cs *catalogService) Sync(ctx context.Context) (int, error) {
  if cs.feed == nil {
    return 0, fmt.Errorf("No catalog feed configured")
  }
  records, err := cs.feed.FetchAll(ctx)
  if err != nil {
    return 0, err
  }

  items := make([]*types.Item, 0, len(records))
  seenSuppliers := map[uuid.UUID]string{}
  for _, rec := range records {
    item := &types.Item{
      ID:          ItemUUID(rec.ExternalID),
      ExternalID:  rec.ExternalID,
      Name:        rec.Name,
      Price:       rec.Price,
      Category:    rec.Category,
      Description: rec.Description,
      Attrs:       []byte(rec.Raw),
    }
    if rec.SupplierID != "" {
      supID := SupplierUUID(rec.SupplierID)
      item.SupplierID = &supID
      if _, ok := seenSuppliers[supID]; !ok {
        seenSuppliers[supID] = rec.SupplierID
      }
    }
    items = append(items, item)
  }

  err = cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    for supID, externalName := range seenSuppliers {
      supplier := &types.Supplier{ID: supID, Name: externalName}
      if eErr := cs.supplierRepo.EnsureExists(ctx, tx, supplier); eErr != nil {
        return fmt.Errorf("Failed to ensure supplier %s: %w", externalName, eErr)
      }
    }
    if uErr := cs.itemRepo.Upsert(ctx, tx, items); uErr != nil {
      return fmt.Errorf("Failed to upsert catalog items: %w", uErr)
    }
    return nil
  })
  if err != nil {
    return 0, err
  }
  cs.log.Info("Catalog synced", "items", len(items), "suppliers", len(seenSuppliers))
  return len(items), nil
}

func (cs *catalogService) List(ctx context.Context, query string) ([]*types.Item, error) {
  return cs.itemRepo.List(ctx, nil, query)
}

// ItemUUID and SupplierUUID derive stable uuids from upstream string ids.
// A feed id that already is a uuid is used as-is.

func ItemUUID(externalID string) uuid.UUID {
  if id, err := uuid.Parse(externalID); err == nil {
    return id
  }
  return uuid.NewSHA1(uuid.NameSpaceURL, []byte("supplycart/item/"+externalID))
}

func SupplierUUID(externalID string) uuid.UUID {
  if id, err := uuid.Parse(externalID); err == nil {
    return id
  }
  return uuid.NewSHA1(uuid.NameSpaceURL, []byte("supplycart/supplier/"+externalID))
}
