package uniqgen

import "iter"

type empty[T any] struct{}

func (empty[T]) Produce() (T, bool) {
	var zero T
	return zero, false
}

// Empty returns a producer that never produces anything.
// Handy as a placeholder and for exercising exhaustion paths.
func Empty[T any]() Producer[T] { return empty[T]{} }

// Map returns a producer yielding f(v) for every value p produces.
// Absent results pass through without calling f. Uniqueness downstream of
// Map only carries over when f is injective; that is not checked.
// Map panics if p or f is nil.
func Map[T, R any](p Producer[T], f func(T) R) Producer[R] {
	if p == nil {
		panic(configErr("uniqgen.Map", ErrNilProducer))
	}
	if f == nil {
		panic(configErr("uniqgen.Map", ErrNilFunc))
	}
	return ProducerFunc[R](func() (R, bool) {
		v, ok := p.Produce()
		if !ok {
			var zero R
			return zero, false
		}
		return f(v), true
	})
}

// Compute produces once and applies f to the result, if any.
func Compute[T, R any](p Producer[T], f func(T) R) (R, bool) {
	if p == nil {
		panic(configErr("uniqgen.Compute", ErrNilProducer))
	}
	if f == nil {
		panic(configErr("uniqgen.Compute", ErrNilFunc))
	}
	v, ok := p.Produce()
	if !ok {
		var zero R
		return zero, false
	}
	return f(v), true
}

// Seq iterates over produced values and stops at the first absent result.
// Over a verified generator the sequence ends when the history saturates.
func Seq[T any](p Producer[T]) iter.Seq[T] {
	if p == nil {
		panic(configErr("uniqgen.Seq", ErrNilProducer))
	}
	return func(yield func(T) bool) {
		for {
			v, ok := p.Produce()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
