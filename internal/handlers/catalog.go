package handlers

import (
  "net/http"
  "github.com/gin-gonic/gin"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type CatalogHandler struct {
  log             *logger.Logger
  catalogService  services.CatalogService
}

func NewCatalogHandler(log *logger.Logger, catalogService services.CatalogService) *CatalogHandler {
  return &CatalogHandler{log: log, catalogService: catalogService}
}

// List serves GET /catalog?q= with the text filter applied server-side.
func (ch *CatalogHandler) List(c *gin.Context) {
  items, err := ch.catalogService.List(c.Request.Context(), c.Query("q"))
  if err != nil {
    RespondError(c, http.StatusInternalServerError, "catalog_unavailable", err)
    return
  }
  RespondOK(c, gin.H{"items": items})
}

// Sync re-pulls the upstream feed on demand.
func (ch *CatalogHandler) Sync(c *gin.Context) {
  count, err := ch.catalogService.Sync(c.Request.Context())
  if err != nil {
    RespondError(c, http.StatusBadGateway, "feed_sync_failed", err)
    return
  }
  RespondOK(c, gin.H{"synced": count})
}
