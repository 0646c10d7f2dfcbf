// Package search implements debounced search-as-you-type suggestions.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"learnflow/models"
)

// Fetcher resolves a query into course suggestions
type Fetcher func(ctx context.Context, query string) ([]models.Course, error)

// Apply receives the suggestions for the query that produced them
type Apply func(query string, results []models.Course)

// Suggester coalesces keystrokes: each Input restarts the idle timer, so only
// the latest query within the debounce window triggers a fetch. A monotonic
// sequence number guards against stale responses: a fetch that lost the race
// is not aborted, its result is simply never applied.
type Suggester struct {
	mu    sync.Mutex
	delay time.Duration
	limit int
	seq   uint64
	timer *time.Timer
	fetch Fetcher
	apply Apply
}

// NewSuggester builds a suggester firing after delay of input silence,
// applying at most limit suggestions per query.
func NewSuggester(fetch Fetcher, apply Apply, delay time.Duration, limit int) *Suggester {
	return &Suggester{
		delay: delay,
		limit: limit,
		fetch: fetch,
		apply: apply,
	}
}

// Input feeds a keystroke's worth of query text. Queries shorter than two
// characters clear the suggestions immediately without fetching.
func (s *Suggester) Input(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	query = strings.TrimSpace(query)
	if len(query) < 2 {
		s.apply(query, []models.Course{})
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(seq, query)
	})
}

func (s *Suggester) fire(seq uint64, query string) {
	s.mu.Lock()
	current := s.seq == seq
	s.mu.Unlock()
	if !current {
		return
	}

	results, err := s.fetch(context.Background(), query)
	if err != nil {
		return
	}
	if s.limit > 0 && len(results) > s.limit {
		results = results[:s.limit]
	}

	// Re-check after the fetch: a newer keystroke wins even if its own
	// fetch has not resolved yet.
	s.mu.Lock()
	current = s.seq == seq
	s.mu.Unlock()
	if current {
		s.apply(query, results)
	}
}

// Stop cancels any pending fetch intent
func (s *Suggester) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
