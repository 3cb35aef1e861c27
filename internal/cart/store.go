package cart

import (
  "context"
  "sync"

  "github.com/google/uuid"
)

// Store persists one cart per user. Implementations must return an empty
// cart, not an error, when no cart has been saved yet.
type Store interface {
  Load(ctx context.Context, userID uuid.UUID) (*Cart, error)
  Save(ctx context.Context, userID uuid.UUID, c *Cart) error
  Clear(ctx context.Context, userID uuid.UUID) error
}

// MemoryStore is the process-local fallback used when redis is not
// configured. Carts do not survive a restart; acceptable for a transient
// session cart.
type MemoryStore struct {
  mu    sync.Mutex
  carts map[uuid.UUID]*Cart
}

func NewMemoryStore() *MemoryStore {
  return &MemoryStore{carts: map[uuid.UUID]*Cart{}}
}

func (s *MemoryStore) Load(ctx context.Context, userID uuid.UUID) (*Cart, error) {
  s.mu.Lock()
  defer s.mu.Unlock()
  stored, ok := s.carts[userID]
  if !ok {
    return &Cart{}, nil
  }
  copied := &Cart{Lines: append([]Line(nil), stored.Lines...)}
  return copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, userID uuid.UUID, c *Cart) error {
  s.mu.Lock()
  defer s.mu.Unlock()
  s.carts[userID] = &Cart{Lines: append([]Line(nil), c.Lines...)}
  return nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID uuid.UUID) error {
  s.mu.Lock()
  defer s.mu.Unlock()
  delete(s.carts, userID)
  return nil
}
