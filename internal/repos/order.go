package repos

import (
  "context"
  "fmt"
  "time"
  "github.com/google/uuid"
  "gorm.io/gorm"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/types"
)

// AggTime scans the MAX(created_at) aggregate column. Postgres hands back a
// time.Time, sqlite hands back the stored text form, so both are accepted.
type AggTime struct {
  time.Time
}

func (at *AggTime) Scan(value any) error {
  switch v := value.(type) {
  case nil:
    return nil
  case time.Time:
    at.Time = v
    return nil
  case []byte:
    return at.parse(string(v))
  case string:
    return at.parse(v)
  }
  return fmt.Errorf("cannot scan %T into AggTime", value)
}

func (at *AggTime) parse(raw string) error {
  layouts := []string{
    "2006-01-02 15:04:05.999999999-07:00",
    "2006-01-02 15:04:05.999999999",
    time.RFC3339Nano,
    time.RFC3339,
  }
  for _, layout := range layouts {
    if t, err := time.Parse(layout, raw); err == nil {
      at.Time = t
      return nil
    }
  }
  return fmt.Errorf("cannot parse %q as aggregate time", raw)
}

// BuyerGroup is one row of the supplier aggregation: per-supermarket order
// count, summed revenue and most recent order time.
type BuyerGroup struct {
  SupermarketID   uuid.UUID   `gorm:"column:supermarket_id"`
  OrderCount      int64       `gorm:"column:order_count"`
  Revenue         float64     `gorm:"column:revenue"`
  LastOrderAt     AggTime     `gorm:"column:last_order_at;type:time"`
}

type OrderRepo interface {
  Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error)
  GetByID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Order, error)
  ListBySupermarket(ctx context.Context, tx *gorm.DB, supermarketID uuid.UUID) ([]*types.Order, error)
  ListBySupplier(ctx context.Context, tx *gorm.DB, supplierID uuid.UUID) ([]*types.Order, error)
  UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, status string) error
  GroupBuyersBySupplier(ctx context.Context, tx *gorm.DB, supplierID uuid.UUID) ([]BuyerGroup, error)
}

type orderRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
  repoLog := baseLog.With("repo", "OrderRepo")
  return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, order *types.Order) (*types.Order, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  if err := transaction.WithContext(ctx).Create(order).Error; err != nil {
    return nil, err
  }
  return order, nil
}

func (or *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, orderID uuid.UUID) (*types.Order, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  var result types.Order
  if err := transaction.WithContext(ctx).
    Preload("Items").
    Where("id = ?", orderID).
    First(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (or *orderRepo) ListBySupermarket(ctx context.Context, tx *gorm.DB, supermarketID uuid.UUID) ([]*types.Order, error) {
  return or.listByColumn(ctx, tx, "supermarket_id", supermarketID)
}

func (or *orderRepo) ListBySupplier(ctx context.Context, tx *gorm.DB, supplierID uuid.UUID) ([]*types.Order, error) {
  return or.listByColumn(ctx, tx, "supplier_id", supplierID)
}

func (or *orderRepo) listByColumn(ctx context.Context, tx *gorm.DB, column string, id uuid.UUID) ([]*types.Order, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  var results []*types.Order
  if err := transaction.WithContext(ctx).
    Preload("Items").
    Where(column+" = ?", id).
    Order("created_at DESC").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (or *orderRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, orderID uuid.UUID, status string) error {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Order{}).
    Where("id = ?", orderID).
    Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

// GroupBuyersBySupplier runs the whole aggregation in one round trip.
// Revenue ties break on supermarket_id ascending so the ordering is
// deterministic.
func (or *orderRepo) GroupBuyersBySupplier(ctx context.Context, tx *gorm.DB, supplierID uuid.UUID) ([]BuyerGroup, error) {
  transaction := tx
  if transaction == nil {
    transaction = or.db
  }
  var rows []BuyerGroup
  if err := transaction.WithContext(ctx).
    Model(&types.Order{}).
    Select("supermarket_id, COUNT(*) AS order_count, SUM(total_amount) AS revenue, MAX(created_at) AS last_order_at").
    Where("supplier_id = ?", supplierID).
    Group("supermarket_id").
    Order("revenue DESC, supermarket_id ASC").
    Scan(&rows).Error; err != nil {
    return nil, err
  }
  return rows, nil
}
