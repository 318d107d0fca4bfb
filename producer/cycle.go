package producer

// Cyclic replays a planned sequence forever. Not safe for concurrent use.
type Cyclic[T any] struct {
	values []T
	next   int
}

// Cycle returns a producer that yields values in order and wraps around.
// With no values it never produces anything.
func Cycle[T any](values ...T) *Cyclic[T] {
	return &Cyclic[T]{values: append([]T(nil), values...)}
}

func (c *Cyclic[T]) Produce() (T, bool) {
	if len(c.values) == 0 {
		var zero T
		return zero, false
	}
	v := c.values[c.next]
	c.next = (c.next + 1) % len(c.values)
	return v, true
}
