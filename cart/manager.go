package cart

import (
	"fmt"
	"sync"
	"time"

	"learnflow/store/kv"
)

// Manager hands out one engine per user, each persisting under its own
// storage key derived from the shared base key. Engines are created lazily
// and reload their persisted cart on first use.
type Manager struct {
	mu      sync.Mutex
	storage kv.Store
	baseKey string
	opts    []Option
	engines map[uint]*managedEngine
}

type managedEngine struct {
	engine   *Engine
	lastUsed time.Time
}

func NewManager(storage kv.Store, baseKey string, opts ...Option) *Manager {
	return &Manager{
		storage: storage,
		baseKey: baseKey,
		opts:    opts,
		engines: make(map[uint]*managedEngine),
	}
}

// ForUser returns the user's cart engine, creating it on first access
func (m *Manager) ForUser(userID uint) *Engine {
	m.mu.Lock()
	defer m.mu.Unlock()
	if managed, ok := m.engines[userID]; ok {
		managed.lastUsed = time.Now()
		return managed.engine
	}
	key := fmt.Sprintf("%s:%d", m.baseKey, userID)
	engine := NewEngine(m.storage, key, m.opts...)
	m.engines[userID] = &managedEngine{engine: engine, lastUsed: time.Now()}
	return engine
}

// EvictIdle releases engines untouched for longer than maxIdle. Their state
// stays in durable storage and reloads on next access.
func (m *Manager) EvictIdle(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	evicted := 0
	cutoff := time.Now().Add(-maxIdle)
	for userID, managed := range m.engines {
		if managed.lastUsed.Before(cutoff) {
			delete(m.engines, userID)
			evicted++
		}
	}
	return evicted
}
