// Package codec turns values into bytes so a generator can key its history by
// encoding instead of by ==. Encodings double as equality: two values are the
// same history entry exactly when they encode to the same bytes, so codecs
// used here should be deterministic.
package codec

// Codec encodes/decodes values V to []byte.
// Implementations must be safe for concurrent use.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
