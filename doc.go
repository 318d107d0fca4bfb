// Package uniqgen turns value producers that may repeat into generators that
// never hand out the same value twice, relative to the history they have seen.
//
// Components:
//   - Producer[T]: yields one T per call, or reports that nothing was produced.
//   - Map / Synchronize: stateless decorators (transform, serialize calls).
//   - VerifiedGenerator[T]: bounded "produce until unique or give up" loop.
//   - Sequential[T]: full-history cache, single writer, no locking.
//   - Concurrent[T]: full-history cache with atomic insert-if-absent.
//
// A Generate call makes at most max(MaxRetry, 1) attempts. Running out of
// attempts is reported as ok=false, never as an error:
//
//	g, _ := uniqgen.NewConcurrent(uniqgen.Synchronize(base), uniqgen.Options[string]{MaxRetry: 8})
//	id, ok := g.Generate()
//	if !ok {
//	    // history saturated for this value space; widen it or raise MaxRetry
//	}
//
// Uniqueness only holds against the in-memory history since the last Purge.
// There is no persistence, eviction or cross-process coordination.
package uniqgen
