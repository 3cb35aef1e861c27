package rediscart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/google/uuid"
	"github.com/yungbote/supplycart-backend/internal/cart"
	"github.com/yungbote/supplycart-backend/internal/logger"
	"github.com/yungbote/supplycart-backend/internal/utils"
)

// Store keeps one JSON-encoded cart per user under a TTL'd key. Concurrent
// cart updates for the same user are last-write-wins, which matches the
// single-session model the dashboard assumes.
type Store struct {
	log    *logger.Logger
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewStore(log *logger.Logger) (*Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := utils.GetEnv("CART_KEY_PREFIX", "cart", log)
	ttlSeconds := utils.GetEnvAsInt("CART_TTL_SECONDS", 86400, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Store{
		log:    log.With("service", "RedisCartStore"),
		rdb:    rdb,
		prefix: prefix,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

func (s *Store) key(userID uuid.UUID) string {
	return s.prefix + ":" + userID.String()
}

func (s *Store) Load(ctx context.Context, userID uuid.UUID) (*cart.Cart, error) {
	if s == nil || s.rdb == nil {
		return nil, fmt.Errorf("redis cart store not initialized")
	}
	raw, err := s.rdb.Get(ctx, s.key(userID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return &cart.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		// A corrupt blob should not wedge the session forever.
		s.log.Warn("Discarding unreadable cart payload", "user_id", userID, "error", err)
		return &cart.Cart{}, nil
	}
	return &c, nil
}

func (s *Store) Save(ctx context.Context, userID uuid.UUID, c *cart.Cart) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis cart store not initialized")
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key(userID), raw, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, userID uuid.UUID) error {
	if s == nil || s.rdb == nil {
		return fmt.Errorf("redis cart store not initialized")
	}
	return s.rdb.Del(ctx, s.key(userID)).Err()
}

func (s *Store) Close() error {
	if s == nil || s.rdb == nil {
		return nil
	}
	return s.rdb.Close()
}
