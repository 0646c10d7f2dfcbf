package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/cart"
	"learnflow/payment"
	"learnflow/store/kv"
)

func newFilledEngine(t *testing.T) *cart.Engine {
	t.Helper()
	engine := cart.NewEngine(kv.NewMemory(), "manager_cart", cart.WithNotifier(silentNotifier{}))
	engine.AddToCart(fixtureCourse(1, 100))
	return engine
}

func TestManagerStartAndGet(t *testing.T) {
	manager := NewManager(payment.NewClient(payment.Config{}))

	assert.Nil(t, manager.Get(1))

	flow, err := manager.Start(1, newFilledEngine(t))
	require.NoError(t, err)
	assert.Same(t, flow, manager.Get(1))
	assert.Nil(t, manager.Get(2))
}

func TestManagerStartReplacesAbandonedFlow(t *testing.T) {
	manager := NewManager(payment.NewClient(payment.Config{}))
	engine := newFilledEngine(t)

	first, err := manager.Start(1, engine)
	require.NoError(t, err)
	second, err := manager.Start(1, engine)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Same(t, second, manager.Get(1))
}

func TestManagerStartRefusesEmptyCart(t *testing.T) {
	manager := NewManager(payment.NewClient(payment.Config{}))
	empty := cart.NewEngine(kv.NewMemory(), "empty", cart.WithNotifier(silentNotifier{}))

	flow, err := manager.Start(1, empty)
	assert.ErrorIs(t, err, cart.ErrEmptyCart)
	assert.Nil(t, flow)
	assert.Nil(t, manager.Get(1))
}

func TestManagerFinish(t *testing.T) {
	manager := NewManager(payment.NewClient(payment.Config{}))

	_, err := manager.Start(1, newFilledEngine(t))
	require.NoError(t, err)

	manager.Finish(1)
	assert.Nil(t, manager.Get(1))

	// Finishing an absent flow is a no-op
	manager.Finish(1)
}

func TestManagerSweep(t *testing.T) {
	manager := NewManager(payment.NewClient(payment.Config{}))

	_, err := manager.Start(1, newFilledEngine(t))
	require.NoError(t, err)
	_, err = manager.Start(2, newFilledEngine(t))
	require.NoError(t, err)

	// Nothing is old enough yet
	assert.Equal(t, 0, manager.Sweep(time.Hour))
	assert.NotNil(t, manager.Get(1))

	// Zero age sweeps everything started before now
	time.Sleep(time.Millisecond)
	assert.Equal(t, 2, manager.Sweep(0))
	assert.Nil(t, manager.Get(1))
	assert.Nil(t, manager.Get(2))
}
