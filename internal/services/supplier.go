package services

import (
  "context"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/types"
)

// unknownBuyerName stands in when a supermarket row has been deleted or the
// reference is inconsistent; one missing record must not abort the response
// for the others.
const unknownBuyerName = "Unknown"

type SupplierService interface {
  BuyersFor(ctx context.Context, supplierID uuid.UUID) ([]types.BuyerSummary, error)
}

type supplierService struct {
  db              *gorm.DB
  log             *logger.Logger
  orderRepo       repos.OrderRepo
  supermarketRepo repos.SupermarketRepo
}

func NewSupplierService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo, supermarketRepo repos.SupermarketRepo) SupplierService {
  serviceLog := log.With("service", "SupplierService")
  return &supplierService{db: db, log: serviceLog, orderRepo: orderRepo, supermarketRepo: supermarketRepo}
}

// BuyersFor recomputes the whole aggregation on every call: one grouped
// query over orders, one batch directory lookup, no cached state.
func (ss *supplierService) BuyersFor(ctx context.Context, supplierID uuid.UUID) ([]types.BuyerSummary, error) {
  groups, err := ss.orderRepo.GroupBuyersBySupplier(ctx, nil, supplierID)
  if err != nil {
    return nil, err
  }
  if len(groups) == 0 {
    return []types.BuyerSummary{}, nil
  }

  ids := make([]uuid.UUID, 0, len(groups))
  for _, g := range groups {
    ids = append(ids, g.SupermarketID)
  }
  supermarkets, err := ss.supermarketRepo.GetByIDs(ctx, nil, ids)
  if err != nil {
    return nil, err
  }
  byID := make(map[uuid.UUID]*types.Supermarket, len(supermarkets))
  for _, sm := range supermarkets {
    byID[sm.ID] = sm
  }

  summaries := make([]types.BuyerSummary, 0, len(groups))
  for _, g := range groups {
    summary := types.BuyerSummary{
      SupermarketID: g.SupermarketID,
      OrderCount:    g.OrderCount,
      Revenue:       g.Revenue,
      LastOrderAt:   g.LastOrderAt.Time,
    }
    if sm, ok := byID[g.SupermarketID]; ok {
      summary.Name = sm.Name
      summary.ContactEmail = sm.ContactEmail
      summary.Address = sm.Address
    } else {
      ss.log.Warn("Supermarket record missing for aggregation", "supermarket_id", g.SupermarketID)
      summary.Name = unknownBuyerName
    }
    summaries = append(summaries, summary)
  }
  return summaries, nil
}
