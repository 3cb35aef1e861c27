package app

import (
  "context"
  "fmt"
  "os"
  "time"

  "github.com/gin-gonic/gin"
  "gorm.io/gorm"

  "github.com/yungbote/supplycart-backend/internal/db"
  "github.com/yungbote/supplycart-backend/internal/logger"
  "github.com/yungbote/supplycart-backend/internal/observability"
)

type App struct {
  Log      *logger.Logger
  DB       *gorm.DB
  Router   *gin.Engine
  Cfg      Config
  Repos    Repos
  Services Services
  clients  Clients
  otelStop func(context.Context) error
  cancel   context.CancelFunc
}

func New() (*App, error) {
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    return nil, fmt.Errorf("init logger: %w", err)
  }

  log.Info("Loading environment variables...")
  cfg := LoadConfig(log)

  otelStop := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: "supplycart-backend",
    Environment: cfg.Environment,
    Version:     cfg.Version,
  })

  pg, err := db.NewPostgresService(log)
  if err != nil {
    log.Sync()
    return nil, fmt.Errorf("init postgres: %w", err)
  }
  if err := pg.AutoMigrateAll(); err != nil {
    log.Sync()
    return nil, fmt.Errorf("postgres automigrate: %w", err)
  }
  theDB := pg.DB()

  clientset, err := wireClients(log, cfg)
  if err != nil {
    log.Sync()
    return nil, err
  }

  reposet := wireRepos(theDB, log)

  serviceset, err := wireServices(theDB, log, cfg, reposet, clientset)
  if err != nil {
    clientset.Close()
    log.Sync()
    return nil, err
  }

  handlerset := wireHandlers(log, serviceset)
  middleware := wireMiddleware(log, serviceset)
  router := wireRouter(cfg, handlerset, middleware)

  return &App{
    Log:      log,
    DB:       theDB,
    Router:   router,
    Cfg:      cfg,
    Repos:    reposet,
    Services: serviceset,
    clients:  clientset,
    otelStop: otelStop,
  }, nil
}

func (a *App) Start() {
  if a == nil || a.cancel != nil {
    return
  }
  ctx, cancel := context.WithCancel(context.Background())
  a.cancel = cancel

  // Pull the catalog once on boot so the dashboard has items to show.
  if a.Cfg.SyncOnStart && a.clients.CatalogFeed != nil {
    go func() {
      syncCtx, done := context.WithTimeout(ctx, 2*time.Minute)
      defer done()
      count, err := a.Services.Catalog.Sync(syncCtx)
      if err != nil {
        a.Log.Warn("Startup catalog sync failed", "error", err)
        return
      }
      a.Log.Info("Startup catalog sync complete", "items", count)
    }()
  }
}

func (a *App) Run(addr string) error {
  if a == nil || a.Router == nil {
    return fmt.Errorf("app not initialized")
  }
  return a.Router.Run(addr)
}

func (a *App) Close() {
  if a == nil {
    return
  }
  if a.cancel != nil {
    a.cancel()
    a.cancel = nil
  }
  if a.otelStop != nil {
    ctx, done := context.WithTimeout(context.Background(), 5*time.Second)
    _ = a.otelStop(ctx)
    done()
  }
  a.clients.Close()
  if a.Log != nil {
    a.Log.Sync()
  }
}
