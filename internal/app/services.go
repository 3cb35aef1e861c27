package app

import (
  "fmt"
  "gorm.io/gorm"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/services"
)

type Services struct {
  Avatar   services.AvatarService
  Auth     services.AuthService
  User     services.UserService
  Profile  services.ProfileService
  Catalog  services.CatalogService
  Cart     services.CartService
  Order    services.OrderService
  Supplier services.SupplierService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) (Services, error) {
  log.Info("Wiring services...")

  avatarService, err := services.NewAvatarService(log, cfg.MediaDir)
  if err != nil {
    return Services{}, fmt.Errorf("init avatar service: %w", err)
  }

  authService := services.NewAuthService(
    db, log,
    repos.User,
    repos.UserToken,
    repos.Supplier,
    repos.Supermarket,
    avatarService,
    cfg.JWTSecretKey,
    cfg.AccessTokenTTL,
    cfg.RefreshTokenTTL,
  )

  userService := services.NewUserService(db, log, repos.User, avatarService)
  profileService := services.NewProfileService(log, repos.User, repos.UserToken, repos.Supplier, repos.Supermarket)
  catalogService := services.NewCatalogService(db, log, clients.CatalogFeed, repos.Item, repos.Supplier)
  cartService := services.NewCartService(log, clients.CartStore, repos.Item)
  orderService := services.NewOrderService(db, log, repos.Order, clients.CartStore)
  supplierService := services.NewSupplierService(db, log, repos.Order, repos.Supermarket)

  return Services{
    Avatar:   avatarService,
    Auth:     authService,
    User:     userService,
    Profile:  profileService,
    Catalog:  catalogService,
    Cart:     cartService,
    Order:    orderService,
    Supplier: supplierService,
  }, nil
}
