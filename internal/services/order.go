package services

import (
  "context"
  "errors"
  "fmt"
  "net/http"
  "strings"
  "time"
  "gorm.io/gorm"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/apierr"
  "github.com/yungbote/supplycart-backend/internal/cart"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/repos"
  "github.com/yungbote/supplycart-backend/internal/types"
)

var (
  ErrEmptyCart        = errors.New("cart is empty")
  // ErrMissingSupplier should be unreachable given the cart invariant, but
  // submission checks it anyway.
  ErrMissingSupplier  = errors.New("cart has no supplier")
  ErrMissingAddress   = errors.New("delivery address is required")
  ErrBadPaymentMethod = errors.New("payment method must be cash, card or bank")
)

const initialOrderStatus = "pending"

type CheckoutDetails struct {
  DeliveryAddress string
  DeliveryDate    *time.Time
  PaymentMethod   string
  Note            string
}

type OrderService interface {
  Submit(ctx context.Context, userID, supermarketID uuid.UUID, details CheckoutDetails) (*types.Order, error)
  ListForSupermarket(ctx context.Context, supermarketID uuid.UUID) ([]*types.Order, error)
  ListForSupplier(ctx context.Context, supplierID uuid.UUID) ([]*types.Order, error)
  UpdateStatus(ctx context.Context, supplierID, orderID uuid.UUID, status string) (*types.Order, error)
}

type orderService struct {
  db        *gorm.DB
  log       *logger.Logger
  orderRepo repos.OrderRepo
  cartStore cart.Store
}

func NewOrderService(db *gorm.DB, log *logger.Logger, orderRepo repos.OrderRepo, cartStore cart.Store) OrderService {
  serviceLog := log.With("service", "OrderService")
  return &orderService{db: db, log: serviceLog, orderRepo: orderRepo, cartStore: cartStore}
}

// Submit turns the stored cart plus checkout details into a persisted order.
// Every failure leaves the stored cart intact so the buyer can retry; the
// cart is cleared only after the transaction commits.
func (os *orderService) Submit(ctx context.Context, userID, supermarketID uuid.UUID, details CheckoutDetails) (*types.Order, error) {
  c, err := os.cartStore.Load(ctx, userID)
  if err != nil {
    return nil, err
  }
  if c.Empty() {
    return nil, ErrEmptyCart
  }
  supplierID, ok := c.SupplierID()
  if !ok || supplierID == uuid.Nil {
    return nil, ErrMissingSupplier
  }
  if strings.TrimSpace(details.DeliveryAddress) == "" {
    return nil, ErrMissingAddress
  }
  paymentMethod, pmErr := normalizePaymentMethod(details.PaymentMethod)
  if pmErr != nil {
    return nil, pmErr
  }

  order := &types.Order{
    ID:              uuid.New(),
    SupplierID:      supplierID,
    SupermarketID:   supermarketID,
    Status:          initialOrderStatus,
    DeliveryAddress: strings.TrimSpace(details.DeliveryAddress),
    DeliveryDate:    details.DeliveryDate,
    PaymentMethod:   paymentMethod,
    Note:            details.Note,
    TotalAmount:     c.Total(),
  }
  for _, line := range c.Lines {
    order.Items = append(order.Items, types.OrderItem{
      ID:        uuid.New(),
      OrderID:   order.ID,
      ItemID:    line.ItemID,
      Name:      line.Name,
      UnitPrice: line.UnitPrice,
      Quantity:  line.Quantity,
      LineTotal: line.UnitPrice * float64(line.Quantity),
    })
  }

  if txErr := os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if _, cErr := os.orderRepo.Create(ctx, tx, order); cErr != nil {
      return fmt.Errorf("Failed to create order: %w", cErr)
    }
    return nil
  }); txErr != nil {
    return nil, txErr
  }

  if clErr := os.cartStore.Clear(ctx, userID); clErr != nil {
    // The order exists; a stale cart is recoverable by the user.
    os.log.Warn("Order created but cart clear failed", "user_id", userID, "order_id", order.ID, "error", clErr)
  }
  return order, nil
}

func (os *orderService) ListForSupermarket(ctx context.Context, supermarketID uuid.UUID) ([]*types.Order, error) {
  return os.orderRepo.ListBySupermarket(ctx, nil, supermarketID)
}

func (os *orderService) ListForSupplier(ctx context.Context, supplierID uuid.UUID) ([]*types.Order, error) {
  return os.orderRepo.ListBySupplier(ctx, nil, supplierID)
}

// UpdateStatus lets a supplier move one of its own orders to any status
// string; statuses are opaque and displayed as-is.
func (os *orderService) UpdateStatus(ctx context.Context, supplierID, orderID uuid.UUID, status string) (*types.Order, error) {
  status = strings.TrimSpace(status)
  if status == "" {
    return nil, apierr.New(http.StatusBadRequest, "status_required", fmt.Errorf("Status is required"))
  }
  order, err := os.orderRepo.GetByID(ctx, nil, orderID)
  if err != nil {
    return nil, apierr.New(http.StatusNotFound, "order_not_found", fmt.Errorf("Order not found"))
  }
  if order.SupplierID != supplierID {
    // A foreign order reads the same as a missing one.
    return nil, apierr.New(http.StatusNotFound, "order_not_found", fmt.Errorf("Order not found"))
  }
  if uErr := os.orderRepo.UpdateStatus(ctx, nil, orderID, status); uErr != nil {
    return nil, fmt.Errorf("Failed to update order status: %w", uErr)
  }
  order.Status = status
  return order, nil
}

func normalizePaymentMethod(method string) (string, error) {
  method = strings.ToLower(strings.TrimSpace(method))
  if method == "" {
    return types.PaymentMethodCash, nil
  }
  switch method {
  case types.PaymentMethodCash, types.PaymentMethodCard, types.PaymentMethodBank:
    return method, nil
  }
  return "", ErrBadPaymentMethod
}
