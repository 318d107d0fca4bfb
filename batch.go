package uniqgen

import (
	"runtime"

	"github.com/sourcegraph/conc/pool"
)

// GenerateN calls p.Produce n times on at most workers goroutines and returns
// the values that were produced, in no particular order. Absent results are
// dropped, so the result may be shorter than n.
// p must be safe for concurrent use (Concurrent, Synchronized, ...).
// workers <= 0 means GOMAXPROCS.
func GenerateN[T any](p Producer[T], n, workers int) []T {
	if p == nil {
		panic(configErr("uniqgen.GenerateN", ErrNilProducer))
	}
	if n <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	type result struct {
		v  T
		ok bool
	}
	rp := pool.NewWithResults[result]().WithMaxGoroutines(workers)
	for i := 0; i < n; i++ {
		rp.Go(func() result {
			v, ok := p.Produce()
			return result{v: v, ok: ok}
		})
	}

	out := make([]T, 0, n)
	for _, r := range rp.Wait() {
		if r.ok {
			out = append(out, r.v)
		}
	}
	return out
}
