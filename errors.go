package uniqgen

import (
	"errors"
	"fmt"
)

var (
	ErrNilProducer  = errors.New("uniqgen: producer is required")
	ErrNilPredicate = errors.New("uniqgen: exists predicate is required")
	ErrNilCodec     = errors.New("uniqgen: codec is required")
	ErrNilFunc      = errors.New("uniqgen: function is required")

	// ErrSelfUnequal rejects a candidate that is not == to itself, such as
	// NaN or a struct holding NaN. Such a value could never be found in an
	// ==-keyed history.
	ErrSelfUnequal = errors.New("uniqgen: value is not equal to itself")
)

// ConfigError is returned by constructors given unusable arguments.
// It unwraps to one of the Err* sentinels.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configErr(op string, err error) error {
	return &ConfigError{Op: op, Err: err}
}
