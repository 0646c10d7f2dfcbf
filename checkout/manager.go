package checkout

import (
	"sync"
	"time"

	"learnflow/cart"
	"learnflow/payment"
)

// Manager tracks one in-progress flow per user. Starting a new flow replaces
// any abandoned one; a cron sweep reaps flows idle past their lifetime.
type Manager struct {
	mu       sync.Mutex
	flows    map[uint]*Flow
	payments *payment.Client
}

func NewManager(payments *payment.Client) *Manager {
	return &Manager{
		flows:    make(map[uint]*Flow),
		payments: payments,
	}
}

// Start opens a fresh flow for the user's cart
func (m *Manager) Start(userID uint, engine *cart.Engine) (*Flow, error) {
	flow, err := NewFlow(engine, m.payments)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	m.flows[userID] = flow
	m.mu.Unlock()
	return flow, nil
}

// Get returns the user's in-progress flow, or nil
func (m *Manager) Get(userID uint) *Flow {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flows[userID]
}

// Finish discards the user's flow after submission or abandonment
func (m *Manager) Finish(userID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, userID)
}

// Sweep drops flows older than maxAge and reports how many were removed
func (m *Manager) Sweep(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	swept := 0
	for userID, flow := range m.flows {
		if flow.StartedAt().Before(cutoff) {
			delete(m.flows, userID)
			swept++
		}
	}
	return swept
}
