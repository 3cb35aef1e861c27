package app

import (
  "github.com/gin-gonic/gin"
  "github.com/yungbote/supplycart-backend/internal/observability"
  "github.com/yungbote/supplycart-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
  return server.NewRouter(server.RouterConfig{
    AuthHandler:     handlers.Auth,
    AuthMiddleware:  middleware.Auth,
    UserHandler:     handlers.User,
    CatalogHandler:  handlers.Catalog,
    CartHandler:     handlers.Cart,
    OrderHandler:    handlers.Order,
    SupplierHandler: handlers.Supplier,
    MediaDir:        cfg.MediaDir,
    AllowedOrigins:  cfg.AllowedOrigins,
    TracingEnabled:  observability.Enabled(),
  })
}
