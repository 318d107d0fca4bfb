// Package random provides the bit sources token producers draw from.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"
	"time"
)

// Source yields random bits both as words and as bytes.
type Source interface {
	rand.Source
	io.Reader
}

// Kind selects a Source implementation.
type Kind uint8

const (
	// FastSequential is a time-seeded Sequential. Cheap, predictable, not goroutine-safe.
	FastSequential Kind = iota
	// Secure reads crypto/rand. Goroutine-safe.
	Secure
	// Shared draws from the math/rand/v2 global generator. Goroutine-safe.
	Shared
)

func (k Kind) String() string {
	switch k {
	case FastSequential:
		return "fast_sequential"
	case Secure:
		return "secure"
	case Shared:
		return "shared"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fast_sequential":
		return FastSequential, nil
	case "secure":
		return Secure, nil
	case "shared":
		return Shared, nil
	}
	return 0, fmt.Errorf("random: unknown kind %q", s)
}

// New builds a fresh Source of the given kind.
func New(k Kind) (Source, error) {
	switch k {
	case FastSequential:
		return NewSequential(uint64(time.Now().UnixNano())), nil
	case Secure:
		return secure{}, nil
	case Shared:
		return shared{}, nil
	}
	return nil, fmt.Errorf("random: unknown kind %d", uint8(k))
}

// fill writes words from next into p, low byte first.
func fill(p []byte, next func() uint64) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, next())
		p = p[8:]
	}
	if len(p) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], next())
		copy(p, tail[:])
	}
}

type secure struct{}

func (secure) Read(p []byte) (int, error) { return crand.Read(p) }

func (secure) Uint64() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(fmt.Errorf("random: crypto source failed: %w", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

type shared struct{}

func (shared) Uint64() uint64 { return rand.Uint64() }

func (shared) Read(p []byte) (int, error) {
	fill(p, rand.Uint64)
	return len(p), nil
}
