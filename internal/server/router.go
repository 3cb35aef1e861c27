package server

import (
  "github.com/gin-gonic/gin"
  "github.com/gin-contrib/cors"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
  "github.com/yungbote/supplycart-backend/internal/handlers"
  "github.com/yungbote/supplycart-backend/internal/middleware"
)

type RouterConfig struct {
  AuthHandler       *handlers.AuthHandler
  AuthMiddleware    *middleware.AuthMiddleware
  UserHandler       *handlers.UserHandler
  CatalogHandler    *handlers.CatalogHandler
  CartHandler       *handlers.CartHandler
  OrderHandler      *handlers.OrderHandler
  SupplierHandler   *handlers.SupplierHandler
  MediaDir          string
  AllowedOrigins    []string
  TracingEnabled    bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  if cfg.TracingEnabled {
    router.Use(otelgin.Middleware("supplycart-backend"))
  }

  // Cors
  origins := cfg.AllowedOrigins
  if len(origins) == 0 {
    origins = []string{
      "http://localhost:80",
      "http://localhost:3000",
      "http://localhost:5174",
    }
  }
  router.Use(cors.New(cors.Config{
    AllowOrigins:     origins,
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))

// ===============
// || Public    ||
// ===============
  router.GET("/healthcheck", handlers.HealthCheck)
  router.POST("/register", cfg.AuthHandler.Register)
  router.POST("/login", cfg.AuthHandler.Login)
  if cfg.MediaDir != "" {
    router.Static("/media", cfg.MediaDir)
  }

// ===============
// || Protected ||
// ===============
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  // Auth
  protected.POST("/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/logout", cfg.AuthHandler.Logout)
  // User
  protected.GET("/me", cfg.UserHandler.GetMe)
  protected.GET("/profile", cfg.UserHandler.GetProfile)
  protected.PUT("/me/avatar", cfg.UserHandler.UploadAvatar)
  // Catalog
  protected.GET("/catalog", cfg.CatalogHandler.List)
  protected.POST("/catalog/sync", cfg.CatalogHandler.Sync)

  // Dashboard routes: cart and checkout are supermarket-only.
  dashboard := protected.Group("/")
  dashboard.Use(cfg.AuthMiddleware.RequireSupermarket())
  dashboard.GET("/cart", cfg.CartHandler.Get)
  dashboard.POST("/cart/items", cfg.CartHandler.AddItem)
  dashboard.PUT("/cart/items/:itemID", cfg.CartHandler.SetQuantity)
  dashboard.POST("/cart/items/:itemID/increment", cfg.CartHandler.Increment)
  dashboard.POST("/cart/items/:itemID/decrement", cfg.CartHandler.Decrement)
  dashboard.DELETE("/cart", cfg.CartHandler.Clear)
  dashboard.POST("/orders", cfg.OrderHandler.Submit)
  dashboard.GET("/orders", cfg.OrderHandler.ListMine)

  // Supplier backend routes.
  supplier := protected.Group("/supplier")
  supplier.Use(cfg.AuthMiddleware.RequireSupplier())
  supplier.GET("/buyers", cfg.SupplierHandler.Buyers)
  supplier.GET("/orders", cfg.OrderHandler.ListIncoming)
  supplier.PATCH("/orders/:orderID/status", cfg.OrderHandler.UpdateStatus)

  return router
}
