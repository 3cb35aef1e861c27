package handlers

import (
  "errors"
  "net/http"
  "time"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type OrderHandler struct {
  log           *logger.Logger
  orderService  services.OrderService
}

func NewOrderHandler(log *logger.Logger, orderService services.OrderService) *OrderHandler {
  return &OrderHandler{log: log, orderService: orderService}
}

func (oh *OrderHandler) Submit(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil || rd.SupermarketID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  var req struct {
    DeliveryAddress   string      `json:"delivery_address"`
    DeliveryDate      *time.Time  `json:"delivery_date"`
    PaymentMethod     string      `json:"payment_method"`
    Note              string      `json:"note"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  order, err := oh.orderService.Submit(c.Request.Context(), rd.UserID, rd.SupermarketID, services.CheckoutDetails{
    DeliveryAddress: req.DeliveryAddress,
    DeliveryDate:    req.DeliveryDate,
    PaymentMethod:   req.PaymentMethod,
    Note:            req.Note,
  })
  if err != nil {
    if isCheckoutValidationError(err) {
      RespondError(c, http.StatusUnprocessableEntity, "checkout_rejected", err)
      return
    }
    RespondServiceError(c, err)
    return
  }
  c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (oh *OrderHandler) ListMine(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.SupermarketID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  orders, err := oh.orderService.ListForSupermarket(c.Request.Context(), rd.SupermarketID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"orders": orders})
}

func (oh *OrderHandler) ListIncoming(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.SupplierID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  orders, err := oh.orderService.ListForSupplier(c.Request.Context(), rd.SupplierID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"orders": orders})
}

func (oh *OrderHandler) UpdateStatus(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.SupplierID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  orderID, err := uuid.Parse(c.Param("orderID"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
    return
  }
  var req struct {
    Status        string      `json:"status"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  order, err := oh.orderService.UpdateStatus(c.Request.Context(), rd.SupplierID, orderID, req.Status)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"order": order})
}

func isCheckoutValidationError(err error) bool {
  return errors.Is(err, services.ErrEmptyCart) ||
    errors.Is(err, services.ErrMissingSupplier) ||
    errors.Is(err, services.ErrMissingAddress) ||
    errors.Is(err, services.ErrBadPaymentMethod)
}
