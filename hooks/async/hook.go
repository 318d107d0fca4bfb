// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{
//	    CollisionEvery: 100, // sample logs: ~every 100th collision
//	    ExhaustedEvery: 1,   // log every exhaustion
//	})
//
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	gen, _ := uniqgen.NewConcurrent(uniqgen.Synchronize(base), uniqgen.Options[string]{
//	    MaxRetry: 16,
//	    Hooks:    hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/uniqgen"
)

// Hooks forwards events to inner on background workers. Events are dropped
// when the queue is full, so Generate never blocks on a slow sink.
type Hooks struct {
	inner uniqgen.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ uniqgen.Hooks = (*Hooks)(nil)

func New(inner uniqgen.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. No events may be sent
// after Close.
func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Collision()         { h.try(h.inner.Collision) }
func (h *Hooks) Exhausted(n int)    { h.try(func() { h.inner.Exhausted(n) }) }
func (h *Hooks) KeyError(err error) { h.try(func() { h.inner.KeyError(err) }) }
func (h *Hooks) Purged(n int)       { h.try(func() { h.inner.Purged(n) }) }
