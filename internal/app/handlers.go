package app

import (
  "github.com/yungbote/supplycart-backend/internal/handlers"
  "github.com/yungbote/supplycart-backend/internal/logger"
)

type Handlers struct {
  Auth     *handlers.AuthHandler
  User     *handlers.UserHandler
  Catalog  *handlers.CatalogHandler
  Cart     *handlers.CartHandler
  Order    *handlers.OrderHandler
  Supplier *handlers.SupplierHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
  log.Info("Wiring handlers...")
  return Handlers{
    Auth:     handlers.NewAuthHandler(services.Auth),
    User:     handlers.NewUserHandler(services.User, services.Profile),
    Catalog:  handlers.NewCatalogHandler(log, services.Catalog),
    Cart:     handlers.NewCartHandler(log, services.Cart),
    Order:    handlers.NewOrderHandler(log, services.Order),
    Supplier: handlers.NewSupplierHandler(log, services.Supplier),
  }
}
