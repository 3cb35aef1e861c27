package handlers

import (
  "context"
  "math"
  "net/http"
  "strconv"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/cart"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type CartHandler struct {
  log           *logger.Logger
  cartService   services.CartService
}

func NewCartHandler(log *logger.Logger, cartService services.CartService) *CartHandler {
  return &CartHandler{log: log, cartService: cartService}
}

func (ch *CartHandler) Get(c *gin.Context) {
  userID, ok := sessionUserID(c)
  if !ok {
    return
  }
  view, err := ch.cartService.Get(c.Request.Context(), userID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"cart": view})
}

func (ch *CartHandler) AddItem(c *gin.Context) {
  userID, ok := sessionUserID(c)
  if !ok {
    return
  }
  var req struct {
    ItemID        string      `json:"item_id"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  itemID, err := uuid.Parse(req.ItemID)
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
    return
  }
  view, err := ch.cartService.AddItem(c.Request.Context(), userID, itemID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"cart": view})
}

// SetQuantity binds the quantity loosely on purpose: a non-numeric or
// non-finite value is a silent no-op that just echoes the current cart,
// matching the dashboard's historical behavior.
func (ch *CartHandler) SetQuantity(c *gin.Context) {
  userID, ok := sessionUserID(c)
  if !ok {
    return
  }
  itemID, err := uuid.Parse(c.Param("itemID"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
    return
  }
  var req struct {
    Quantity      any         `json:"quantity"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  qty, usable := coerceQuantity(req.Quantity)
  if !usable {
    view, gErr := ch.cartService.Get(c.Request.Context(), userID)
    if gErr != nil {
      RespondServiceError(c, gErr)
      return
    }
    RespondOK(c, gin.H{"cart": view})
    return
  }
  view, err := ch.cartService.SetQuantity(c.Request.Context(), userID, itemID, qty)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"cart": view})
}

func (ch *CartHandler) Increment(c *gin.Context) {
  ch.adjust(c, ch.cartService.Increment)
}

func (ch *CartHandler) Decrement(c *gin.Context) {
  ch.adjust(c, ch.cartService.Decrement)
}

func (ch *CartHandler) Clear(c *gin.Context) {
  userID, ok := sessionUserID(c)
  if !ok {
    return
  }
  if err := ch.cartService.Clear(c.Request.Context(), userID); err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"cart": gin.H{"lines": []any{}, "total": 0}})
}

func (ch *CartHandler) adjust(c *gin.Context, op func(ctx context.Context, userID, itemID uuid.UUID) (*services.CartView, error)) {
  userID, ok := sessionUserID(c)
  if !ok {
    return
  }
  itemID, err := uuid.Parse(c.Param("itemID"))
  if err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
    return
  }
  view, err := op(c.Request.Context(), userID, itemID)
  if err != nil {
    RespondServiceError(c, err)
    return
  }
  RespondOK(c, gin.H{"cart": view})
}

// coerceQuantity accepts JSON numbers and numeric strings; anything else
// (null, booleans, objects, NaN, Inf) is unusable and triggers the no-op.
func coerceQuantity(v any) (int, bool) {
  switch q := v.(type) {
  case float64:
    return clampQuantity(q)
  case string:
    f, err := strconv.ParseFloat(q, 64)
    if err != nil {
      return 0, false
    }
    return clampQuantity(f)
  }
  return 0, false
}

// clampQuantity bounds the float before the int conversion: a finite value
// beyond the cart cap must land on the cap, not overflow into a negative int
// that would delete the line.
func clampQuantity(q float64) (int, bool) {
  if math.IsNaN(q) || math.IsInf(q, 0) {
    return 0, false
  }
  if q > cart.MaxQuantity {
    return cart.MaxQuantity, true
  }
  if q < 0 {
    return 0, true
  }
  return int(q), true
}

func sessionUserID(c *gin.Context) (uuid.UUID, bool) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.UserID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return uuid.Nil, false
  }
  return rd.UserID, true
}
