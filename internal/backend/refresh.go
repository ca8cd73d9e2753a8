package backend

import (
	"context"
	"sync"
)

// Fetch loads the rows for one panel. Implementations must honour ctx
// cancellation: a cancelled fetch returns promptly with ctx.Err().
type Fetch func(ctx context.Context) ([]string, error)

// Gate serialises external command execution against in-flight refreshes.
// Acquire blocks until the gate is free and returns the release func.
type Gate struct {
	mu sync.Mutex
}

// Acquire takes the gate and returns the func that releases it.
func (g *Gate) Acquire() func() {
	g.mu.Lock()
	var once sync.Once
	return func() {
		once.Do(g.mu.Unlock)
	}
}

// Handle tracks one in-flight fetch. It carries the generation stamped at
// start time so stale completions can be rejected after newer work began.
type Handle struct {
	gen    uint64
	cancel context.CancelFunc
	done   chan struct{}

	rows      []string
	err       error
	cancelled bool
}

// Generation returns the refresher generation this fetch was started under.
func (h *Handle) Generation() uint64 {
	return h.gen
}

// Done is closed once the fetch goroutine has fully torn down.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel signals the fetch to stop and blocks until its goroutine exits.
// After Cancel returns no further work from this handle touches anything.
func (h *Handle) Cancel() {
	h.cancel()
	<-h.done
	h.cancelled = true
}

// Cancelled reports whether Cancel completed on this handle.
func (h *Handle) Cancelled() bool {
	return h.cancelled
}

// Result returns the fetched rows and error. Only valid after Done is closed.
func (h *Handle) Result() ([]string, error) {
	return h.rows, h.err
}

// Refresher starts fetches and stamps each with a monotonically increasing
// generation. Each fetch runs under the gate, so no fetch overlaps an
// external command holding it. Callers start and cancel handles from a
// single goroutine.
type Refresher struct {
	gen  uint64
	gate *Gate
}

// NewRefresher builds a Refresher whose fetches serialise on gate.
func NewRefresher(gate *Gate) *Refresher {
	return &Refresher{gate: gate}
}

// Start launches fetch on its own goroutine and returns its handle. The
// goroutine waits for the gate before fetching; cancelling the handle
// while it waits still tears it down promptly once the gate frees.
func (r *Refresher) Start(fetch Fetch) *Handle {
	r.gen++
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handle{
		gen:    r.gen,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go func() {
		defer close(h.done)
		if r.gate != nil {
			release := r.gate.Acquire()
			defer release()
		}
		h.rows, h.err = fetch(ctx)
	}()
	return h
}

// Generation returns the most recently issued generation.
func (r *Refresher) Generation() uint64 {
	return r.gen
}
