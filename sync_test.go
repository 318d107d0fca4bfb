package uniqgen

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// overlapDetector records whether two Produce calls ever ran at once.
type overlapDetector struct {
	inFlight atomic.Int64
	overlap  atomic.Bool
	n        int // deliberately unsynchronized
}

func (o *overlapDetector) Produce() (int, bool) {
	if o.inFlight.Add(1) > 1 {
		o.overlap.Store(true)
	}
	time.Sleep(50 * time.Microsecond)
	o.n++
	v := o.n
	o.inFlight.Add(-1)
	return v, true
}

func TestSynchronizeSerializesCalls(t *testing.T) {
	inner := &overlapDetector{}
	s := Synchronize[int](inner)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				s.Produce()
			}
		}()
	}
	wg.Wait()

	if inner.overlap.Load() {
		t.Fatalf("inner producer ran concurrently")
	}
	if inner.n != 200 {
		t.Fatalf("n=%d want 200", inner.n)
	}
}

func TestSynchronizeReleasesOnPanic(t *testing.T) {
	calls := 0
	s := Synchronize[int](ProducerFunc[int](func() (int, bool) {
		calls++
		if calls == 1 {
			panic("boom")
		}
		return calls, true
	}))

	func() {
		defer func() {
			if r := recover(); r != "boom" {
				t.Fatalf("panic not propagated: %v", r)
			}
		}()
		s.Produce()
	}()

	done := make(chan struct{})
	go func() {
		defer close(done)
		if v, ok := s.Produce(); !ok || v != 2 {
			t.Errorf("got (%d,%v) want (2,true)", v, ok)
		}
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("lock still held after panic")
	}
}

func TestSynchronizeDoesNotDeduplicate(t *testing.T) {
	s := Synchronize[int](newCycle(4, 4))
	a, _ := s.Produce()
	b, _ := s.Produce()
	if a != 4 || b != 4 {
		t.Fatalf("got %d %d", a, b)
	}
}

func TestSynchronizeNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for nil producer")
		}
	}()
	Synchronize[int](nil)
}
