package cart

import (
	"sync"

	"bodegapos/internal/domain"

	"github.com/google/uuid"
)

// Manager is the session registry: one Cart per open terminal session,
// keyed by an opaque id. Carts are an explicit value handed to each
// operation rather than ambient state, so several terminals can share one
// process.
type Manager struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]*Cart)}
}

// Create opens a new empty cart session and returns it.
func (m *Manager) Create() *Cart {
	c := &Cart{ID: uuid.NewString()}
	m.mu.Lock()
	m.carts[c.ID] = c
	m.mu.Unlock()
	return c
}

// Get returns the cart for the given session id.
func (m *Manager) Get(id string) (*Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.carts[id]
	if !ok {
		return nil, domain.E(domain.KindCartNotFound, "cart %s not found", id)
	}
	return c, nil
}

// Discard drops a session entirely, leaving no durable trace. Used for
// "new sale" and for abandoning an in-progress cart.
func (m *Manager) Discard(id string) {
	m.mu.Lock()
	delete(m.carts, id)
	m.mu.Unlock()
}
