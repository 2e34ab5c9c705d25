package floradex

import (
	"context"
	"sync"
	"time"
)

// defaultQuietPeriod is how long input must stay idle before a fetch fires.
const defaultQuietPeriod = 500 * time.Millisecond

// FetchFunc loads results for a query value.
type FetchFunc[Q, T any] func(ctx context.Context, query Q) (T, error)

// DeliverFunc receives the outcome of a fetch. It is called from the
// controller's timer goroutine, never concurrently with itself.
type DeliverFunc[Q, T any] func(query Q, result T, err error)

// FetchController debounces rapidly-changing input, such as search text or
// a moving map viewport. Each Request restarts a quiet-period timer; only
// when input pauses does the fetch run. Every request gets a sequence
// number, and a response is delivered only if no newer request was issued
// while it was in flight. Out-of-order arrivals are discarded rather than
// overwriting fresher results.
type FetchController[Q, T any] struct {
	fetch   FetchFunc[Q, T]
	deliver DeliverFunc[Q, T]
	quiet   time.Duration

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64
}

// NewFetchController creates a controller with the default 500ms quiet period.
func NewFetchController[Q, T any](fetch FetchFunc[Q, T], deliver DeliverFunc[Q, T]) *FetchController[Q, T] {
	return &FetchController[Q, T]{
		fetch:   fetch,
		deliver: deliver,
		quiet:   defaultQuietPeriod,
	}
}

// WithQuietPeriod overrides the quiet period. Values <= 0 keep the default.
func (c *FetchController[Q, T]) WithQuietPeriod(d time.Duration) *FetchController[Q, T] {
	if d > 0 {
		c.quiet = d
	}
	return c
}

// Request schedules a fetch for the query after the quiet period. Any
// previously pending fetch is cancelled; an in-flight one has its result
// discarded on arrival.
func (c *FetchController[Q, T]) Request(ctx context.Context, query Q) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	seq := c.seq

	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.quiet, func() {
		c.run(ctx, seq, query)
	})
}

// Stop cancels any pending fetch and invalidates in-flight ones. The
// controller remains usable after Stop.
func (c *FetchController[Q, T]) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *FetchController[Q, T]) run(ctx context.Context, seq uint64, query Q) {
	if c.stale(seq) {
		return
	}

	result, err := c.fetch(ctx, query)

	// A newer request may have been issued while the fetch was in flight.
	if c.stale(seq) {
		return
	}
	c.deliver(query, result, err)
}

func (c *FetchController[Q, T]) stale(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq != c.seq
}
