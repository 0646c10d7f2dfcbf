package search

import (
	"sync"

	"learnflow/models"
)

// Board holds the most recently applied suggestions. Readers polling between
// keystrokes see the last query that survived the debounce race.
type Board struct {
	mu      sync.RWMutex
	query   string
	results []models.Course
}

func NewBoard() *Board {
	return &Board{results: []models.Course{}}
}

// Set replaces the board contents. It satisfies the Apply signature.
func (b *Board) Set(query string, results []models.Course) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = query
	b.results = results
}

// Current returns the query and suggestions last applied
func (b *Board) Current() (string, []models.Course) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Course, len(b.results))
	copy(out, b.results)
	return b.query, out
}
