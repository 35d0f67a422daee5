package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/windoze95/servicehub-api/internal/logger"
	"go.uber.org/zap"
)

// FetchFunc loads one page of results and the total result count.
type FetchFunc[T any] func(ctx context.Context, req FetchRequest) ([]T, int, error)

// LiveSearch wires a Debouncer to Reduce: typed input is debounced,
// committed queries and page changes issue fetches in the background, and
// every state change is passed to the listener.
type LiveSearch[T any] struct {
	fetch    FetchFunc[T]
	listener func(SearchState[T])

	ctx    context.Context
	cancel context.CancelFunc

	debouncer *Debouncer

	mu     sync.Mutex
	state  SearchState[T]
	closed bool
	wg     sync.WaitGroup
}

// NewLiveSearch creates a LiveSearch. The listener runs with the state lock
// held, so it must not call back into the LiveSearch.
func NewLiveSearch[T any](ctx context.Context, delay time.Duration, pageSize int, fetch FetchFunc[T], listener func(SearchState[T])) *LiveSearch[T] {
	ctx, cancel := context.WithCancel(ctx)
	ls := &LiveSearch[T]{
		fetch:    fetch,
		listener: listener,
		ctx:      ctx,
		cancel:   cancel,
		state:    NewSearchState[T](pageSize),
	}
	ls.debouncer = NewDebouncer(delay, func(q string) {
		ls.Dispatch(QueryCommitted{Query: q})
	})
	return ls
}

// Input feeds a keystroke-level query value.
func (ls *LiveSearch[T]) Input(query string) {
	ls.debouncer.Input(query)
}

// SetPage moves to another page of the current query.
func (ls *LiveSearch[T]) SetPage(page int) {
	ls.Dispatch(PageChanged{Page: page})
}

// State returns a snapshot of the current state.
func (ls *LiveSearch[T]) State() SearchState[T] {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return ls.state
}

// Dispatch applies an event and starts any fetch it requires.
func (ls *LiveSearch[T]) Dispatch(e Event) {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.closed {
		return
	}

	next, req := Reduce(ls.state, e)
	ls.state = next
	if ls.listener != nil {
		ls.listener(next)
	}
	if req != nil {
		ls.wg.Add(1)
		go ls.run(*req)
	}
}

func (ls *LiveSearch[T]) run(req FetchRequest) {
	defer ls.wg.Done()
	items, total, err := ls.safeFetch(req)
	if err != nil {
		ls.Dispatch(FetchFailed{Generation: req.Generation, Err: err})
		return
	}
	ls.Dispatch(FetchResolved[T]{Generation: req.Generation, Items: items, Total: total})
}

// safeFetch reports a panicking fetch as an error.
func (ls *LiveSearch[T]) safeFetch(req FetchRequest) (items []T, total int, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("live search fetch panicked",
				zap.String("query", req.Query),
				zap.Any("panic", r),
				zap.Stack("stack"),
			)
			items, total, err = nil, 0, fmt.Errorf("search failed: %v", r)
		}
	}()
	return ls.fetch(ls.ctx, req)
}

// Close stops the debouncer, cancels in-flight fetches and waits for them.
// No listener calls happen after Close returns.
func (ls *LiveSearch[T]) Close() {
	ls.debouncer.Stop()
	ls.mu.Lock()
	ls.closed = true
	ls.mu.Unlock()
	ls.cancel()
	ls.wg.Wait()
}
