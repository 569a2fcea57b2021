package repositories

import (
	"context"
	"sync"
)

// Persisted state keys. The names match what the browser demo kept in
// localStorage so a stored order list survives swapping store backends.
const (
	KeyUser         = "seatserve_user"
	KeyLoggedIn     = "seatserve_logged_in"
	KeyOrders       = "seatserve_orders"
	KeyPendingOrder = "pending_order"
	KeyConcession   = "selected_concession_name"
)

// Store is the process-wide, string-keyed key/value persistence every
// repository sits on. It mirrors the localStorage contract the demo UI was
// built against: synchronous string-in string-out, and a missing key is not
// an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// MemoryStore is the default Store: a mutex-guarded map. State lives only as
// long as the process, which matches a fresh browser session.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
