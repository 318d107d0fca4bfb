package uniqgen

// Hooks lightweight callbacks for generator events.
// Implementations MUST be cheap and non-blocking and safe for concurrent use.
// Generate calls them on hot paths.
type Hooks interface {
	// A candidate was rejected because it already exists.
	Collision()

	// A Generate call gave up after attempts tries.
	Exhausted(attempts int)

	// A candidate could not be keyed (codec failure or ErrSelfUnequal) and
	// was rejected.
	KeyError(err error)

	// Purge dropped removed entries from the history.
	Purged(removed int)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Collision()     {}
func (NopHooks) Exhausted(int)  {}
func (NopHooks) KeyError(error) {}
func (NopHooks) Purged(int)     {}
