package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/google/uuid"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/requestdata"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type SupplierHandler struct {
  log              *logger.Logger
  supplierService  services.SupplierService
}

func NewSupplierHandler(log *logger.Logger, supplierService services.SupplierService) *SupplierHandler {
  return &SupplierHandler{log: log, supplierService: supplierService}
}

// Buyers serves GET /supplier/buyers: the per-buyer aggregation for the
// authenticated supplier.
func (sh *SupplierHandler) Buyers(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.SupplierID == uuid.Nil {
    c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
    return
  }
  buyers, err := sh.supplierService.BuyersFor(c.Request.Context(), rd.SupplierID)
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "aggregation_failed", err)
    return
  }
  RespondOK(c, gin.H{"buyers": buyers})
}
