package services

import (
  "context"
  "fmt"
  "net/http"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/apierr"
  "github.com/yungbote/supplycart-backend/internal/cart"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
)

// CartView is what handlers render: the lines plus the derived totals.
type CartView struct {
  Lines      []cart.Line   `json:"lines"`
  Total      float64       `json:"total"`
  SupplierID *uuid.UUID    `json:"supplier_id,omitempty"`
}

type CartService interface {
  Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
  AddItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)
  SetQuantity(ctx context.Context, userID, itemID uuid.UUID, qty int) (*CartView, error)
  Increment(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)
  Decrement(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error)
  Clear(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
  log      *logger.Logger
  store    cart.Store
  itemRepo repos.ItemRepo
}

func NewCartService(log *logger.Logger, store cart.Store, itemRepo repos.ItemRepo) CartService {
  serviceLog := log.With("service", "CartService")
  return &cartService{log: serviceLog, store: store, itemRepo: itemRepo}
}

func (cs *cartService) Get(ctx context.Context, userID uuid.UUID) (*CartView, error) {
  c, err := cs.store.Load(ctx, userID)
  if err != nil {
    return nil, err
  }
  return viewOf(c), nil
}

func (cs *cartService) AddItem(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
  items, err := cs.itemRepo.GetByIDs(ctx, nil, []uuid.UUID{itemID})
  if err != nil {
    return nil, err
  }
  if len(items) == 0 {
    return nil, apierr.New(http.StatusNotFound, "item_not_found", fmt.Errorf("Item %s not found", itemID))
  }
  item := items[0]

  c, err := cs.store.Load(ctx, userID)
  if err != nil {
    return nil, err
  }
  // A rejected add never touches the stored cart.
  if aErr := c.Add(cart.LineItem{
    ItemID:     item.ID,
    Name:       item.Name,
    SupplierID: item.SupplierID,
    UnitPrice:  item.Price,
  }); aErr != nil {
    return nil, apierr.New(http.StatusUnprocessableEntity, "cart_rejected", aErr)
  }
  if sErr := cs.store.Save(ctx, userID, c); sErr != nil {
    return nil, sErr
  }
  return viewOf(c), nil
}

func (cs *cartService) SetQuantity(ctx context.Context, userID, itemID uuid.UUID, qty int) (*CartView, error) {
  return cs.mutate(ctx, userID, func(c *cart.Cart) {
    c.SetQuantity(itemID, qty)
  })
}

func (cs *cartService) Increment(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
  return cs.mutate(ctx, userID, func(c *cart.Cart) {
    c.Increment(itemID)
  })
}

func (cs *cartService) Decrement(ctx context.Context, userID, itemID uuid.UUID) (*CartView, error) {
  return cs.mutate(ctx, userID, func(c *cart.Cart) {
    c.Decrement(itemID)
  })
}

func (cs *cartService) Clear(ctx context.Context, userID uuid.UUID) error {
  return cs.store.Clear(ctx, userID)
}

func (cs *cartService) mutate(ctx context.Context, userID uuid.UUID, apply func(c *cart.Cart)) (*CartView, error) {
  c, err := cs.store.Load(ctx, userID)
  if err != nil {
    return nil, err
  }
  apply(c)
  if sErr := cs.store.Save(ctx, userID, c); sErr != nil {
    return nil, sErr
  }
  return viewOf(c), nil
}

func viewOf(c *cart.Cart) *CartView {
  view := &CartView{
    Lines: c.Lines,
    Total: c.Total(),
  }
  if view.Lines == nil {
    view.Lines = []cart.Line{}
  }
  if supID, ok := c.SupplierID(); ok {
    view.SupplierID = &supID
  }
  return view
}
