// Package producer holds base producers for uniqgen generators: random
// tokens, UUIDs, xids and small integer spaces. None of them promise
// uniqueness; layer a uniqgen verified generator on top for that.
//
// Producers built on a non-goroutine-safe reader or source (random.Sequential,
// Cycle) must be wrapped with uniqgen.Synchronize before concurrent use.
package producer

import (
	"encoding/hex"
	"errors"
	"io"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/rs/xid"

	"github.com/unkn0wn-root/uniqgen"
)

// Constructors panic with a *uniqgen.ConfigError wrapping one of these.
var (
	ErrNilReader = errors.New("producer: reader is required")
	ErrNilSource = errors.New("producer: source is required")
	ErrBadSize   = errors.New("producer: size must be positive")
)

func invalid(op string, err error) error {
	return &uniqgen.ConfigError{Op: op, Err: err}
}

// UUID yields version 4 UUIDs built from r. A read error yields nothing for
// that call.
func UUID(r io.Reader) uniqgen.Producer[uuid.UUID] {
	if r == nil {
		panic(invalid("producer.UUID", ErrNilReader))
	}
	return uniqgen.ProducerFunc[uuid.UUID](func() (uuid.UUID, bool) {
		u, err := uuid.NewRandomFromReader(r)
		if err != nil {
			return uuid.Nil, false
		}
		return u, true
	})
}

// XID yields globally sortable 12-byte ids. Goroutine-safe.
func XID() uniqgen.Producer[xid.ID] {
	return uniqgen.ProducerFunc[xid.ID](func() (xid.ID, bool) {
		return xid.New(), true
	})
}

// Bytes yields n random bytes per call. Each call returns a new slice.
// []byte is not comparable: key a history over it with codec.Bytes.
func Bytes(r io.Reader, n int) uniqgen.Producer[[]byte] {
	if r == nil {
		panic(invalid("producer.Bytes", ErrNilReader))
	}
	if n <= 0 {
		panic(invalid("producer.Bytes", ErrBadSize))
	}
	return uniqgen.ProducerFunc[[]byte](func() ([]byte, bool) {
		b := make([]byte, n)
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, false
		}
		return b, true
	})
}

// Hex yields n random bytes per call, hex encoded (2n characters).
func Hex(r io.Reader, n int) uniqgen.Producer[string] {
	return uniqgen.Map(Bytes(r, n), hex.EncodeToString)
}

// IntN yields ints in [0, n). With a small n it makes saturation easy to reach.
func IntN(src rand.Source, n int) uniqgen.Producer[int] {
	if src == nil {
		panic(invalid("producer.IntN", ErrNilSource))
	}
	if n <= 0 {
		panic(invalid("producer.IntN", ErrBadSize))
	}
	r := rand.New(src)
	return uniqgen.ProducerFunc[int](func() (int, bool) {
		return r.IntN(n), true
	})
}
