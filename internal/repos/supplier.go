package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "gorm.io/gorm/clause"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/types"
)

type SupplierRepo interface {
  Create(ctx context.Context, tx *gorm.DB, suppliers []*types.Supplier) ([]*types.Supplier, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.Supplier, error)
  EnsureExists(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) error
}

type supplierRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSupplierRepo(db *gorm.DB, baseLog *logger.Logger) SupplierRepo {
  repoLog := baseLog.With("repo", "SupplierRepo")
  return &supplierRepo{db: db, log: repoLog}
}

func (sr *supplierRepo) Create(ctx context.Context, tx *gorm.DB, suppliers []*types.Supplier) ([]*types.Supplier, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if len(suppliers) == 0 {
    return []*types.Supplier{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&suppliers).Error; err != nil {
    return nil, err
  }
  return suppliers, nil
}

func (sr *supplierRepo) GetByIDs(ctx context.Context, tx *gorm.DB, supplierIDs []uuid.UUID) ([]*types.Supplier, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var results []*types.Supplier
  if len(supplierIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("id IN ?", supplierIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// EnsureExists inserts the supplier if its id is new and leaves an existing
// row untouched. Used by catalog sync, where the feed knows supplier ids but
// not necessarily their profiles.
func (sr *supplierRepo) EnsureExists(ctx context.Context, tx *gorm.DB, supplier *types.Supplier) error {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  return transaction.WithContext(ctx).
    Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, DoNothing: true}).
    Create(supplier).Error
}
