package uniqgen

import "sync/atomic"

// verifier carries the state shared by every verified generator: the inner
// producer, the retry bound and the observability sinks.
type verifier[T any] struct {
	inner    Producer[T]
	maxRetry atomic.Int64
	log      Logger
	hooks    Hooks
}

func (b *verifier[T]) init(p Producer[T], opts Options[T]) {
	b.inner = p
	b.maxRetry.Store(int64(opts.MaxRetry))
	b.log = coalesce[Logger](opts.Logger, NopLogger{})
	b.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	if opts.MaxRetry <= 0 {
		b.log.Debug("max retry below 1; each Generate makes a single attempt", Fields{"maxRetry": opts.MaxRetry})
	}
}

// MaxRetry returns the stored bound. Safe for concurrent use.
func (b *verifier[T]) MaxRetry() int { return int(b.maxRetry.Load()) }

// SetMaxRetry changes the bound used by subsequent Generate calls.
func (b *verifier[T]) SetMaxRetry(n int) {
	old := b.maxRetry.Swap(int64(n))
	b.log.Debug("max retry changed", Fields{"old": old, "new": n})
}

// run is the bounded produce-and-check loop. accept is called once per
// present candidate and reports whether it was taken. The bound is read once
// by the caller, so a concurrent SetMaxRetry never changes it mid-loop.
func (b *verifier[T]) run(maxRetry int, accept func(T) bool) (T, bool) {
	n := attempts(maxRetry)
	for i := 0; i < n; i++ {
		v, ok := b.inner.Produce()
		if !ok {
			continue
		}
		if accept(v) {
			return v, true
		}
	}
	b.hooks.Exhausted(n)
	var zero T
	return zero, false
}

// Verified checks candidates with a caller-supplied predicate instead of a
// built-in history. It is as concurrency-safe as its producer and predicate.
type Verified[T any] struct {
	verifier[T]
	exists func(T) bool
}

var _ VerifiedGenerator[struct{}] = (*Verified[struct{}])(nil)

// NewVerified wraps p so Generate only returns values for which exists is false.
// opts.Codec is ignored.
func NewVerified[T any](p Producer[T], exists func(T) bool, opts Options[T]) (*Verified[T], error) {
	const op = "uniqgen.NewVerified"
	if p == nil {
		return nil, configErr(op, ErrNilProducer)
	}
	if exists == nil {
		return nil, configErr(op, ErrNilPredicate)
	}
	v := &Verified[T]{exists: exists}
	v.init(p, opts)
	return v, nil
}

func (v *Verified[T]) Produce() (T, bool)  { return v.Generate() }
func (v *Verified[T]) Generate() (T, bool) { return v.GenerateWith(v.MaxRetry()) }

func (v *Verified[T]) GenerateWith(maxRetry int) (T, bool) {
	return v.run(maxRetry, func(c T) bool {
		if v.exists(c) {
			v.hooks.Collision()
			return false
		}
		return true
	})
}

func (v *Verified[T]) Exists(c T) bool { return v.exists(c) }
