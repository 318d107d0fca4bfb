package uniqgen

import (
	"github.com/unkn0wn-root/uniqgen/codec"
)

// Producer yields one value per call. ok=false means nothing was produced
// this round. No uniqueness or determinism is implied.
type Producer[T any] interface {
	Produce() (v T, ok bool)
}

// ProducerFunc adapts a plain function to Producer.
type ProducerFunc[T any] func() (T, bool)

func (f ProducerFunc[T]) Produce() (T, bool) { return f() }

// VerifiedGenerator retries an inner producer until a candidate passes the
// existence check or the retry budget runs out.
// Produce is the same as Generate so verified generators compose as producers.
type VerifiedGenerator[T any] interface {
	Producer[T]

	// Generate makes at most max(MaxRetry(), 1) attempts.
	// ok=false signals exhaustion, not a fault.
	Generate() (v T, ok bool)
	// GenerateWith is Generate with a one-off bound; the stored default is untouched.
	GenerateWith(maxRetry int) (v T, ok bool)
	// Exists reports whether v is already known. No side effects: a value
	// the history cannot key is reported as unknown, silently.
	Exists(v T) bool

	MaxRetry() int
	SetMaxRetry(n int)
}

// FullCache is a VerifiedGenerator backed by the complete set of values it
// has accepted. The family is closed: only *Sequential and *Concurrent
// implement it.
type FullCache[T any] interface {
	VerifiedGenerator[T]

	// Purge drops the whole history; earlier values may be accepted again.
	Purge()
	// Keys returns a copy of the history in no particular order.
	Keys() []T
	// Len is the number of accepted values since the last Purge.
	Len() int

	sealed()
}

// Options tune a verified generator. The zero value is usable.
type Options[T any] struct {
	// MaxRetry bounds attempts per Generate call; values <= 0 still make one attempt.
	MaxRetry int

	// Codec keys the history by encoded bytes instead of by ==.
	// Required by the *Encoded constructors, optional otherwise.
	Codec codec.Codec[T]

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}
