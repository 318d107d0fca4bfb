package uniqgen

import (
	"errors"
	"testing"
)

func TestVerifiedBoundedAttempts(t *testing.T) {
	cases := []struct {
		maxRetry int
		want     int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{7, 7},
	}
	for _, tc := range cases {
		checks := 0
		p := &constant{v: 9}
		g, err := NewVerified[int](p, func(int) bool { checks++; return true }, Options[int]{MaxRetry: tc.maxRetry})
		if err != nil {
			t.Fatalf("NewVerified: %v", err)
		}
		if v, ok := g.Generate(); ok {
			t.Fatalf("maxRetry=%d: expected exhaustion, got %d", tc.maxRetry, v)
		}
		if checks != tc.want {
			t.Fatalf("maxRetry=%d: exists called %d times, want %d", tc.maxRetry, checks, tc.want)
		}
		if got := p.calls.Load(); got != int64(tc.want) {
			t.Fatalf("maxRetry=%d: producer called %d times, want %d", tc.maxRetry, got, tc.want)
		}
	}
}

func TestVerifiedAcceptsFirstNonExisting(t *testing.T) {
	seen := map[int]bool{1: true, 2: true}
	g, err := NewVerified[int](newCycle(1, 2, 3), func(v int) bool { return seen[v] }, Options[int]{MaxRetry: 3})
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := g.Generate(); !ok || v != 3 {
		t.Fatalf("got (%d,%v) want (3,true)", v, ok)
	}
	// predicate-only verification keeps no history of its own
	if v, ok := g.Generate(); !ok || v != 3 {
		t.Fatalf("second call: got (%d,%v) want (3,true)", v, ok)
	}
}

func TestAbsentCandidateConsumesAttempt(t *testing.T) {
	calls := 0
	p := ProducerFunc[int](func() (int, bool) {
		calls++
		if calls < 3 {
			return 0, false
		}
		return 42, true
	})
	g, err := NewVerified[int](p, func(int) bool { return false }, Options[int]{MaxRetry: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.Generate(); ok {
		t.Fatalf("two absent candidates should exhaust maxRetry=2")
	}
	if v, ok := g.Generate(); !ok || v != 42 {
		t.Fatalf("got (%d,%v) want (42,true)", v, ok)
	}
}

func TestGenerateWithDoesNotChangeDefault(t *testing.T) {
	p := &constant{v: 1}
	g, err := NewVerified[int](p, func(int) bool { return true }, Options[int]{MaxRetry: 2})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.GenerateWith(10); ok {
		t.Fatalf("expected exhaustion")
	}
	if got := p.calls.Load(); got != 10 {
		t.Fatalf("override: producer called %d times, want 10", got)
	}
	if g.MaxRetry() != 2 {
		t.Fatalf("MaxRetry changed to %d", g.MaxRetry())
	}
	g.Generate()
	if got := p.calls.Load(); got != 12 {
		t.Fatalf("default: producer called %d times total, want 12", got)
	}
}

func TestSetMaxRetryTakesEffectNextCall(t *testing.T) {
	p := &constant{v: 1}
	lg := &recLogger{}
	g, err := NewVerified[int](p, func(int) bool { return true }, Options[int]{MaxRetry: 1, Logger: lg})
	if err != nil {
		t.Fatal(err)
	}
	g.SetMaxRetry(4)
	if g.MaxRetry() != 4 {
		t.Fatalf("MaxRetry=%d want 4", g.MaxRetry())
	}
	g.Generate()
	if got := p.calls.Load(); got != 4 {
		t.Fatalf("producer called %d times, want 4", got)
	}
	ln, ok := lg.find("max retry changed")
	if !ok || ln.f["new"] != 4 {
		t.Fatalf("expected debug log for SetMaxRetry, got %+v", ln)
	}
}

func TestVerifiedHooks(t *testing.T) {
	h := &recHooks{}
	g, err := NewVerified[int](&constant{v: 3}, func(int) bool { return true }, Options[int]{MaxRetry: 3, Hooks: h})
	if err != nil {
		t.Fatal(err)
	}
	g.Generate()
	if h.collisions.Load() != 3 || h.exhausted.Load() != 1 || h.lastTries.Load() != 3 {
		t.Fatalf("hooks: collisions=%d exhausted=%d tries=%d", h.collisions.Load(), h.exhausted.Load(), h.lastTries.Load())
	}
}

func TestVerifiedProduceIsGenerate(t *testing.T) {
	g, err := NewVerified[int](newCycle(5), func(int) bool { return false }, Options[int]{})
	if err != nil {
		t.Fatal(err)
	}
	var p Producer[int] = g
	if v, ok := p.Produce(); !ok || v != 5 {
		t.Fatalf("got (%d,%v)", v, ok)
	}
}

func TestConstructorsRejectMissingCollaborators(t *testing.T) {
	_, err := NewVerified[int](nil, func(int) bool { return false }, Options[int]{})
	if !errors.Is(err, ErrNilProducer) {
		t.Fatalf("NewVerified(nil producer): %v", err)
	}
	_, err = NewVerified[int](newCycle(1), nil, Options[int]{})
	if !errors.Is(err, ErrNilPredicate) {
		t.Fatalf("NewVerified(nil predicate): %v", err)
	}
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Op != "uniqgen.NewVerified" {
		t.Fatalf("expected *ConfigError with op, got %#v", err)
	}

	if _, err := NewSequential[int](nil, Options[int]{}); !errors.Is(err, ErrNilProducer) {
		t.Fatalf("NewSequential: %v", err)
	}
	if _, err := NewConcurrent[int](nil, Options[int]{}); !errors.Is(err, ErrNilProducer) {
		t.Fatalf("NewConcurrent: %v", err)
	}
	if _, err := NewSequentialEncoded[[]byte](Empty[[]byte](), Options[[]byte]{}); !errors.Is(err, ErrNilCodec) {
		t.Fatalf("NewSequentialEncoded: %v", err)
	}
	if _, err := NewConcurrentEncoded[[]byte](Empty[[]byte](), Options[[]byte]{}); !errors.Is(err, ErrNilCodec) {
		t.Fatalf("NewConcurrentEncoded: %v", err)
	}
}

func TestNonPositiveMaxRetryLogged(t *testing.T) {
	lg := &recLogger{}
	if _, err := NewSequential[int](newCycle(1), Options[int]{MaxRetry: -1, Logger: lg}); err != nil {
		t.Fatal(err)
	}
	if _, ok := lg.find("max retry below 1; each Generate makes a single attempt"); !ok {
		t.Fatalf("expected debug line for floored max retry")
	}
}
