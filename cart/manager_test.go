package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/store/kv"
)

func TestForUserIsolatesCarts(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "carts", WithNotifier(&captureNotifier{}))

	manager.ForUser(1).AddToCart(testCourse(1, 10))
	manager.ForUser(2).AddToCart(testCourse(2, 20))

	assert.True(t, manager.ForUser(1).IsInCart(1))
	assert.False(t, manager.ForUser(1).IsInCart(2))
	assert.True(t, manager.ForUser(2).IsInCart(2))
}

func TestForUserReturnsSameEngine(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "carts", WithNotifier(&captureNotifier{}))

	assert.Same(t, manager.ForUser(1), manager.ForUser(1))
}

func TestEvictedEngineReloadsFromStorage(t *testing.T) {
	storage := kv.NewMemory()
	manager := NewManager(storage, "carts", WithNotifier(&captureNotifier{}))

	manager.ForUser(1).AddToCart(testCourse(1, 10))
	manager.ForUser(1).AddToCart(testCourse(1, 10))

	evicted := manager.EvictIdle(0)
	assert.Equal(t, 1, evicted)

	// A fresh engine comes back with the persisted state
	engine := manager.ForUser(1)
	assert.Equal(t, 2, engine.GetItemQuantity(1))
}

func TestEvictIdleKeepsRecentEngines(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "carts", WithNotifier(&captureNotifier{}))

	engine := manager.ForUser(1)
	engine.AddToCart(testCourse(1, 10))

	evicted := manager.EvictIdle(time.Hour)
	assert.Equal(t, 0, evicted)
	assert.Same(t, engine, manager.ForUser(1))
}

func TestManagerAppliesOptions(t *testing.T) {
	manager := NewManager(kv.NewMemory(), "carts", WithTaxRate(0), WithNotifier(&captureNotifier{}))

	engine := manager.ForUser(1)
	engine.AddToCart(testCourse(1, 100))

	summary := engine.GetCartSummary()
	require.Equal(t, 100.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.Tax)
	assert.Equal(t, 100.0, summary.Total)
}
