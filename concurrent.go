package uniqgen

// Concurrent is a full-history cache generator safe for any number of
// goroutines. Acceptance is an atomic insert-if-absent, so two callers that
// race with equal candidates never both get that value: one wins, the other
// spends an attempt. Which one wins is unspecified.
//
// The producer is called from many goroutines at once. If it is not safe for
// that, wrap it with Synchronize first; Concurrent does not detect or repair
// a racy producer.
//
// Purge while Generate calls are in flight is allowed; a value accepted just
// before the purge may be handed out again afterwards.
type Concurrent[T any] struct {
	fullCache[T]
}

var _ FullCache[struct{}] = (*Concurrent[struct{}])(nil)

// NewConcurrent keys the history by ==. If opts.Codec is set it behaves
// like NewConcurrentEncoded. Values not == to themselves are rejected with
// ErrSelfUnequal, as for NewSequential.
func NewConcurrent[T comparable](p Producer[T], opts Options[T]) (*Concurrent[T], error) {
	if opts.Codec != nil {
		return NewConcurrentEncoded(p, opts)
	}
	if p == nil {
		return nil, configErr("uniqgen.NewConcurrent", ErrNilProducer)
	}
	c := &Concurrent[T]{}
	c.hist = newSyncSet(identity[T]())
	c.init(p, opts)
	return c, nil
}

// NewConcurrentEncoded keys the history by opts.Codec output. The codec must
// be safe for concurrent use and deterministic.
func NewConcurrentEncoded[T any](p Producer[T], opts Options[T]) (*Concurrent[T], error) {
	const op = "uniqgen.NewConcurrentEncoded"
	if p == nil {
		return nil, configErr(op, ErrNilProducer)
	}
	if opts.Codec == nil {
		return nil, configErr(op, ErrNilCodec)
	}
	c := &Concurrent[T]{}
	c.hist = newSyncSet(encoded(opts.Codec))
	c.init(p, opts)
	return c, nil
}
