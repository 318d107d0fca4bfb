package uniqgen

import (
	"errors"
	"sync"

	"github.com/unkn0wn-root/uniqgen/codec"
)

// history is the set of values a full-cache generator has accepted.
type history[T any] interface {
	// has is a pure membership test.
	has(v T) (bool, error)
	// add inserts v unless present and reports whether it did.
	add(v T) (bool, error)
	// clear empties the set and returns how many entries it dropped.
	clear() int
	// keys returns a copy of the members.
	keys() ([]T, error)
	size() int
}

// keyer maps values to set keys and back.
type keyer[K comparable, T any] struct {
	key  func(T) (K, error)
	back func(K) (T, error)
}

func identity[T comparable]() keyer[T, T] {
	return keyer[T, T]{
		key: func(v T) (T, error) {
			if v != v {
				return v, ErrSelfUnequal
			}
			return v, nil
		},
		back: func(k T) (T, error) { return k, nil },
	}
}

// encoded keys values by their codec bytes. Decoding on the way out hands
// callers fresh values that share no memory with the history.
func encoded[T any](c codec.Codec[T]) keyer[string, T] {
	return keyer[string, T]{
		key: func(v T) (string, error) {
			b, err := c.Encode(v)
			if err != nil {
				return "", err
			}
			return string(b), nil
		},
		back: func(k string) (T, error) { return c.Decode([]byte(k)) },
	}
}

// mapSet is a plain map. Not safe for concurrent use.
type mapSet[K comparable, T any] struct {
	kr keyer[K, T]
	m  map[K]struct{}
}

func newMapSet[K comparable, T any](kr keyer[K, T]) *mapSet[K, T] {
	return &mapSet[K, T]{kr: kr, m: make(map[K]struct{})}
}

func (s *mapSet[K, T]) has(v T) (bool, error) {
	k, err := s.kr.key(v)
	if err != nil {
		return false, err
	}
	_, ok := s.m[k]
	return ok, nil
}

func (s *mapSet[K, T]) add(v T) (bool, error) {
	k, err := s.kr.key(v)
	if err != nil {
		return false, err
	}
	if _, ok := s.m[k]; ok {
		return false, nil
	}
	s.m[k] = struct{}{}
	return true, nil
}

func (s *mapSet[K, T]) clear() int {
	n := len(s.m)
	clear(s.m)
	return n
}

func (s *mapSet[K, T]) keys() ([]T, error) {
	out := make([]T, 0, len(s.m))
	var errs []error
	for k := range s.m {
		v, err := s.kr.back(k)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, v)
	}
	return out, errors.Join(errs...)
}

func (s *mapSet[K, T]) size() int { return len(s.m) }

// syncSet accepts through LoadOrStore, so test-and-insert is one atomic step
// and two goroutines can never both add the same key.
type syncSet[K comparable, T any] struct {
	kr keyer[K, T]
	m  sync.Map // K -> struct{}
}

func newSyncSet[K comparable, T any](kr keyer[K, T]) *syncSet[K, T] {
	return &syncSet[K, T]{kr: kr}
}

func (s *syncSet[K, T]) has(v T) (bool, error) {
	k, err := s.kr.key(v)
	if err != nil {
		return false, err
	}
	_, ok := s.m.Load(k)
	return ok, nil
}

func (s *syncSet[K, T]) add(v T) (bool, error) {
	k, err := s.kr.key(v)
	if err != nil {
		return false, err
	}
	_, loaded := s.m.LoadOrStore(k, struct{}{})
	return !loaded, nil
}

// clear is best-effort under concurrent adds: the count is taken before the
// wipe, and entries added in between are dropped uncounted.
func (s *syncSet[K, T]) clear() int {
	n := s.size()
	s.m.Clear()
	return n
}

func (s *syncSet[K, T]) keys() ([]T, error) {
	var (
		out  []T
		errs []error
	)
	s.m.Range(func(k, _ any) bool {
		v, err := s.kr.back(k.(K))
		if err != nil {
			errs = append(errs, err)
			return true
		}
		out = append(out, v)
		return true
	})
	return out, errors.Join(errs...)
}

func (s *syncSet[K, T]) size() int {
	n := 0
	s.m.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
