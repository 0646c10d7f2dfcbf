package search

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnflow/models"
)

type applied struct {
	query   string
	results []models.Course
}

// applyRecorder collects apply calls and signals each one on a channel
type applyRecorder struct {
	mu    sync.Mutex
	calls []applied
	ch    chan applied
}

func newApplyRecorder() *applyRecorder {
	return &applyRecorder{ch: make(chan applied, 16)}
}

func (r *applyRecorder) apply(query string, results []models.Course) {
	r.mu.Lock()
	call := applied{query: query, results: results}
	r.calls = append(r.calls, call)
	r.mu.Unlock()
	r.ch <- call
}

func (r *applyRecorder) wait(t *testing.T) applied {
	t.Helper()
	select {
	case call := <-r.ch:
		return call
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for suggestions to apply")
		return applied{}
	}
}

func (r *applyRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func echoFetcher(queries *[]string, mu *sync.Mutex) Fetcher {
	return func(ctx context.Context, query string) ([]models.Course, error) {
		if mu != nil {
			mu.Lock()
			*queries = append(*queries, query)
			mu.Unlock()
		}
		return []models.Course{{ID: 1, Title: query}}, nil
	}
}

func TestShortQueryClearsImmediately(t *testing.T) {
	recorder := newApplyRecorder()
	suggester := NewSuggester(echoFetcher(nil, nil), recorder.apply, 50*time.Millisecond, 5)
	defer suggester.Stop()

	suggester.Input("g")

	call := recorder.wait(t)
	assert.Equal(t, "g", call.query)
	assert.Empty(t, call.results)
}

func TestDebouncedFetchAppliesResults(t *testing.T) {
	recorder := newApplyRecorder()
	suggester := NewSuggester(echoFetcher(nil, nil), recorder.apply, 10*time.Millisecond, 5)
	defer suggester.Stop()

	suggester.Input("golang")

	call := recorder.wait(t)
	assert.Equal(t, "golang", call.query)
	require.Len(t, call.results, 1)
	assert.Equal(t, "golang", call.results[0].Title)
}

func TestLatestKeystrokeWins(t *testing.T) {
	var fetched []string
	var mu sync.Mutex
	recorder := newApplyRecorder()
	suggester := NewSuggester(echoFetcher(&fetched, &mu), recorder.apply, 30*time.Millisecond, 5)
	defer suggester.Stop()

	// Rapid keystrokes inside the debounce window
	suggester.Input("go")
	suggester.Input("gol")
	suggester.Input("gola")
	suggester.Input("golang")

	call := recorder.wait(t)
	assert.Equal(t, "golang", call.query)

	// Earlier queries never reached the fetcher
	mu.Lock()
	assert.Equal(t, []string{"golang"}, fetched)
	mu.Unlock()
	assert.Equal(t, 1, recorder.count())
}

func TestWhitespaceOnlyQueryClears(t *testing.T) {
	recorder := newApplyRecorder()
	suggester := NewSuggester(echoFetcher(nil, nil), recorder.apply, 10*time.Millisecond, 5)
	defer suggester.Stop()

	suggester.Input("   ")

	call := recorder.wait(t)
	assert.Empty(t, call.results)
}

func TestResultsAreLimited(t *testing.T) {
	fetch := func(ctx context.Context, query string) ([]models.Course, error) {
		out := make([]models.Course, 10)
		for i := range out {
			out[i] = models.Course{ID: uint(i + 1)}
		}
		return out, nil
	}
	recorder := newApplyRecorder()
	suggester := NewSuggester(fetch, recorder.apply, 10*time.Millisecond, 3)
	defer suggester.Stop()

	suggester.Input("anything")

	call := recorder.wait(t)
	assert.Len(t, call.results, 3)
}

func TestFetchErrorAppliesNothing(t *testing.T) {
	fetch := func(ctx context.Context, query string) ([]models.Course, error) {
		return nil, errors.New("catalog unavailable")
	}
	recorder := newApplyRecorder()
	suggester := NewSuggester(fetch, recorder.apply, 10*time.Millisecond, 5)
	defer suggester.Stop()

	suggester.Input("golang")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}

func TestStopCancelsPendingFetch(t *testing.T) {
	recorder := newApplyRecorder()
	suggester := NewSuggester(echoFetcher(nil, nil), recorder.apply, 30*time.Millisecond, 5)

	suggester.Input("golang")
	suggester.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, recorder.count())
}

func TestBoardHoldsLatestApplied(t *testing.T) {
	board := NewBoard()
	suggester := NewSuggester(echoFetcher(nil, nil), board.Set, time.Millisecond, 5)
	defer suggester.Stop()

	query, results := board.Current()
	assert.Empty(t, query)
	assert.Empty(t, results)

	suggester.Input("golang")
	require.Eventually(t, func() bool {
		query, _ := board.Current()
		return query == "golang"
	}, 2*time.Second, 5*time.Millisecond)

	_, results = board.Current()
	require.Len(t, results, 1)
	assert.Equal(t, "golang", results[0].Title)
}

func TestStaleFetchResultIsDropped(t *testing.T) {
	release := make(chan struct{})
	started := make(chan string, 2)
	fetch := func(ctx context.Context, query string) ([]models.Course, error) {
		started <- query
		if query == "slow" {
			<-release
		}
		return []models.Course{{ID: 1, Title: query}}, nil
	}
	recorder := newApplyRecorder()
	suggester := NewSuggester(fetch, recorder.apply, time.Millisecond, 5)
	defer suggester.Stop()

	suggester.Input("slow")
	<-started // the slow fetch is in flight

	suggester.Input("fast")
	call := recorder.wait(t)
	assert.Equal(t, "fast", call.query)

	// The slow fetch resolves after losing the race; its result is dropped
	close(release)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}
