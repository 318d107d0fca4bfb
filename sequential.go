package uniqgen

// Sequential is a full-history cache generator for a single writer.
// It does no locking: concurrent Generate or Purge calls are a data race.
// Use Concurrent, or guard the generator yourself, when sharing it.
type Sequential[T any] struct {
	fullCache[T]
}

var _ FullCache[struct{}] = (*Sequential[struct{}])(nil)

// NewSequential keys the history by ==. If opts.Codec is set it behaves
// like NewSequentialEncoded.
//
// A candidate that is not == to itself (NaN, or a struct or array holding
// NaN) is rejected with ErrSelfUnequal through the KeyError hook and costs
// one attempt. To accept NaN once, use NewSequentialEncoded with codec.CBOR,
// which encodes every NaN identically.
func NewSequential[T comparable](p Producer[T], opts Options[T]) (*Sequential[T], error) {
	if opts.Codec != nil {
		return NewSequentialEncoded(p, opts)
	}
	if p == nil {
		return nil, configErr("uniqgen.NewSequential", ErrNilProducer)
	}
	s := &Sequential[T]{}
	s.hist = newMapSet(identity[T]())
	s.init(p, opts)
	return s, nil
}

// NewSequentialEncoded keys the history by opts.Codec output, so T need not
// be comparable. Two values are equal when their encodings are equal; use a
// deterministic codec.
func NewSequentialEncoded[T any](p Producer[T], opts Options[T]) (*Sequential[T], error) {
	const op = "uniqgen.NewSequentialEncoded"
	if p == nil {
		return nil, configErr(op, ErrNilProducer)
	}
	if opts.Codec == nil {
		return nil, configErr(op, ErrNilCodec)
	}
	s := &Sequential[T]{}
	s.hist = newMapSet(encoded(opts.Codec))
	s.init(p, opts)
	return s, nil
}
