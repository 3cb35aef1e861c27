package repos

import (
  "context"
  "strings"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/types"
)

type ItemRepo interface {
  Upsert(ctx context.Context, tx *gorm.DB, items []*types.Item) error
  GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.Item, error)
  List(ctx context.Context, tx *gorm.DB, query string) ([]*types.Item, error)
}

type itemRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewItemRepo(db *gorm.DB, baseLog *logger.Logger) ItemRepo {
  repoLog := baseLog.With("repo", "ItemRepo")
  return &itemRepo{db: db, log: repoLog}
}

// Upsert keys on external_id so repeated feed syncs refresh price and
// metadata without duplicating rows.
func (ir *itemRepo) Upsert(ctx context.Context, tx *gorm.DB, items []*types.Item) error {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  if len(items) == 0 {
    return nil
  }
  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{
      Columns:   []clause.Column{{Name: "external_id"}},
      DoUpdates: clause.AssignmentColumns([]string{"supplier_id", "name", "price", "category", "description", "attrs", "updated_at"}),
    }).
    Create(&items).Error
}

func (ir *itemRepo) GetByIDs(ctx context.Context, tx *gorm.DB, itemIDs []uuid.UUID) ([]*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  var results []*types.Item
  if len(itemIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("id IN ?", itemIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// List applies a case-insensitive contains filter over name, category and
// description. An empty query returns the whole catalog.
func (ir *itemRepo) List(ctx context.Context, tx *gorm.DB, query string) ([]*types.Item, error) {
  transaction := tx
  if transaction == nil {
    transaction = ir.db
  }
  var results []*types.Item
  q := transaction.WithContext(ctx).Model(&types.Item{}).Order("name ASC")
  if trimmed := strings.TrimSpace(query); trimmed != "" {
    pattern := "%" + strings.ToLower(trimmed) + "%"
    q = q.Where(
      "LOWER(name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(description) LIKE ?",
      pattern, pattern, pattern,
    )
  }
  if err := q.Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
