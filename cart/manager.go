package cart

import (
	"context"
	"sync"
)

// StorageFactory builds the durable storage for one cart session.
type StorageFactory func(sessionID string) Storage

// Manager hands out one Cart per session token. Each cart is loaded
// from storage on first access and kept syncing with its siblings for
// the lifetime of the manager's context.
type Manager struct {
	ctx     context.Context
	factory StorageFactory

	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager(ctx context.Context, factory StorageFactory) *Manager {
	return &Manager{
		ctx:     ctx,
		factory: factory,
		carts:   make(map[string]*Cart),
	}
}

// Get returns the cart for the session, creating and loading it on
// first access.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.carts[sessionID]; ok {
		return c
	}
	c := New(m.factory(sessionID))
	c.Load(m.ctx)
	c.StartSync(m.ctx)
	m.carts[sessionID] = c
	return c
}
