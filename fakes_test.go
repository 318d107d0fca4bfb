package uniqgen

import (
	"sync"
	"sync/atomic"
)

// cycle replays planned values forever. Not goroutine-safe.
type cycle struct {
	planned []int
	i       int
	calls   int
}

func newCycle(planned ...int) *cycle { return &cycle{planned: planned} }

func (c *cycle) Produce() (int, bool) {
	c.calls++
	v := c.planned[c.i]
	c.i = (c.i + 1) % len(c.planned)
	return v, true
}

// constant always yields v and counts calls atomically.
type constant struct {
	v     int
	calls atomic.Int64
}

func (c *constant) Produce() (int, bool) {
	c.calls.Add(1)
	return c.v, true
}

// counter yields 0, 1, 2, ... modulo space. Goroutine-safe.
type counter struct {
	n     atomic.Int64
	space int64
}

func (c *counter) Produce() (int, bool) {
	return int((c.n.Add(1) - 1) % c.space), true
}

type recHooks struct {
	collisions atomic.Int64
	exhausted  atomic.Int64
	keyErrs    atomic.Int64
	purged     atomic.Int64
	lastTries  atomic.Int64
}

func (h *recHooks) Collision()         { h.collisions.Add(1) }
func (h *recHooks) KeyError(error)     { h.keyErrs.Add(1) }
func (h *recHooks) Purged(removed int) { h.purged.Add(int64(removed)) }

func (h *recHooks) Exhausted(n int) {
	h.exhausted.Add(1)
	h.lastTries.Store(int64(n))
}

type logLine struct {
	level string
	msg   string
	f     Fields
}

type recLogger struct {
	mu    sync.Mutex
	lines []logLine
}

func (l *recLogger) rec(level, msg string, f Fields) {
	l.mu.Lock()
	l.lines = append(l.lines, logLine{level: level, msg: msg, f: f})
	l.mu.Unlock()
}

func (l *recLogger) Debug(msg string, f Fields) { l.rec("debug", msg, f) }
func (l *recLogger) Info(msg string, f Fields)  { l.rec("info", msg, f) }
func (l *recLogger) Warn(msg string, f Fields)  { l.rec("warn", msg, f) }
func (l *recLogger) Error(msg string, f Fields) { l.rec("error", msg, f) }

func (l *recLogger) find(msg string) (logLine, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, ln := range l.lines {
		if ln.msg == msg {
			return ln, true
		}
	}
	return logLine{}, false
}
