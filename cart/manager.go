package cart

import "sync"

// Manager hands out one Store per cart session key, loading the
// persisted snapshot on first use and keeping the live Store cached so
// concurrent requests for the same session share state.
type Manager struct {
	mu      sync.Mutex
	storage Storage
	stores  map[string]*Store
}

func NewManager(storage Storage) *Manager {
	return &Manager{
		storage: storage,
		stores:  make(map[string]*Store),
	}
}

// StoreFor returns the Store bound to the given session key.
func (m *Manager) StoreFor(key string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[key]; ok {
		return s
	}
	s := NewStore(key, m.storage)
	m.stores[key] = s
	return s
}

// Drop forgets the cached Store for a session, e.g. after checkout
// cleared it. The persisted snapshot stays authoritative.
func (m *Manager) Drop(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, key)
}
