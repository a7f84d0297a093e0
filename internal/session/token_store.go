package session

import (
	"context"
	"sync"
)

// TokenStore holds the single stored bearer token under a fixed key.
//
// It is written at login, read on every refresh, and cleared only by the
// silent-logout path or an explicit logout. An absent token is reported as
// "" with no error.
type TokenStore interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, raw string) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the token in process memory. It is the default
// when no Redis address is configured, and the store used by tests.
type MemoryTokenStore struct {
	mu  sync.Mutex
	raw string
}

func NewMemoryTokenStore() *MemoryTokenStore { return &MemoryTokenStore{} }

func (m *MemoryTokenStore) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw, nil
}

func (m *MemoryTokenStore) Set(ctx context.Context, raw string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = raw
	return nil
}

func (m *MemoryTokenStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw = ""
	return nil
}
