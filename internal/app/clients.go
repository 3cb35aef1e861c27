package app

import (
  "fmt"
  "os"
  "strings"
  "github.com/yungbote/supplycart-backend/internal/cart"
  "github.com/yungbote/supplycart-backend/internal/clients/catalogfeed"
  "github.com/yungbote/supplycart-backend/internal/clients/rediscart"
  "github.com/yungbote/supplycart-backend/internal/logger"
)

type Clients struct {
  CartStore   cart.Store
  CatalogFeed *catalogfeed.Client
  redisStore  *rediscart.Store
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
  log.Info("Wiring clients...")

  // Redis-backed carts when REDIS_ADDR is set, in-process otherwise.
  var store cart.Store
  var redisStore *rediscart.Store
  if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
    rs, err := rediscart.NewStore(log)
    if err != nil {
      return Clients{}, fmt.Errorf("init redis cart store: %w", err)
    }
    redisStore = rs
    store = rs
  } else {
    log.Warn("REDIS_ADDR not set, carts will not survive restarts")
    store = cart.NewMemoryStore()
  }

  var feed *catalogfeed.Client
  if cfg.CatalogFeedURLs != "" {
    f, err := catalogfeed.NewClient(log, cfg.CatalogFeedURLs)
    if err != nil {
      return Clients{}, fmt.Errorf("init catalog feed client: %w", err)
    }
    feed = f
  } else {
    log.Warn("CATALOG_FEED_URLS not set, catalog sync disabled")
  }

  return Clients{
    CartStore:   store,
    CatalogFeed: feed,
    redisStore:  redisStore,
  }, nil
}

func (c *Clients) Close() {
  if c == nil {
    return
  }
  if c.redisStore != nil {
    _ = c.redisStore.Close()
  }
}
