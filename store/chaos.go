package store

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Chaos simulates network latency and random transient failures in front of
// the in-memory stores. Production wiring keeps FailureRate at zero; tests
// raise it to exercise caller retry paths.
type Chaos struct {
	Latency     time.Duration
	FailureRate float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewChaos builds a chaos hook with its own seeded RNG
func NewChaos(latency time.Duration, failureRate float64) *Chaos {
	return &Chaos{
		Latency:     latency,
		FailureRate: failureRate,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// induce waits out the configured latency, then rolls for a transient failure.
// A nil receiver is a no-op so stores can run without any chaos wiring.
func (c *Chaos) induce(ctx context.Context) error {
	if c == nil {
		return nil
	}
	if c.Latency > 0 {
		timer := time.NewTimer(c.Latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	if c.FailureRate > 0 {
		c.mu.Lock()
		roll := c.rng.Float64()
		c.mu.Unlock()
		if roll < c.FailureRate {
			return ErrUnavailable
		}
	}
	return nil
}

// roll exposes a raw random float for stores that fabricate mock numbers
func (c *Chaos) roll() float64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rng.Float64()
}
