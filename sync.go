package uniqgen

import "sync"

// Synchronized serializes calls to a wrapped producer, making any producer
// safe for concurrent use. It does not deduplicate.
type Synchronized[T any] struct {
	mu    sync.Mutex
	inner Producer[T]
}

var _ Producer[struct{}] = (*Synchronized[struct{}])(nil)

// Synchronize wraps p. It panics if p is nil.
func Synchronize[T any](p Producer[T]) *Synchronized[T] {
	if p == nil {
		panic(configErr("uniqgen.Synchronize", ErrNilProducer))
	}
	return &Synchronized[T]{inner: p}
}

// Produce holds the lock for the inner call only; it is released on every
// exit path, panics included.
func (s *Synchronized[T]) Produce() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Produce()
}
