package repos

import (
  "context"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/types"
)

type SupermarketRepo interface {
  Create(ctx context.Context, tx *gorm.DB, supermarkets []*types.Supermarket) ([]*types.Supermarket, error)
  GetByIDs(ctx context.Context, tx *gorm.DB, supermarketIDs []uuid.UUID) ([]*types.Supermarket, error)
}

type supermarketRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSupermarketRepo(db *gorm.DB, baseLog *logger.Logger) SupermarketRepo {
  repoLog := baseLog.With("repo", "SupermarketRepo")
  return &supermarketRepo{db: db, log: repoLog}
}

func (sr *supermarketRepo) Create(ctx context.Context, tx *gorm.DB, supermarkets []*types.Supermarket) ([]*types.Supermarket, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  if len(supermarkets) == 0 {
    return []*types.Supermarket{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&supermarkets).Error; err != nil {
    return nil, err
  }
  return supermarkets, nil
}

func (sr *supermarketRepo) GetByIDs(ctx context.Context, tx *gorm.DB, supermarketIDs []uuid.UUID) ([]*types.Supermarket, error) {
  transaction := tx
  if transaction == nil {
    transaction = sr.db
  }
  var results []*types.Supermarket
  if len(supermarketIDs) == 0 {
    return results, nil
  }
  if err := transaction.WithContext(ctx).
    Where("id IN ?", supermarketIDs).
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}
