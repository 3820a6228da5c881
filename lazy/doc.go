// Package lazy provides deferred computations and an at-most-once memoizer.
//
// The central type is Producer, a zero-argument computation that yields its
// value on demand. Forcing a producer runs the computation; a plain producer
// may be forced zero, one, or many times, running each time.
//
// # Memoization
//
// Memoize wraps a producer so the underlying computation executes at most
// once, across any number of sequential or concurrent callers:
//
//	p := lazy.Memoize(lazy.Func[int](func() (int, error) {
//	    return expensive(), nil
//	}))
//	v, _ := p.Force() // runs expensive()
//	v, _ = p.Force()  // cached, expensive() never runs again
//
// A caller that arrives while the first computation is in flight blocks
// until it finishes, so the guarantee is at-most-once execution, not
// at-most-once attempt. The lock also establishes a happens-before edge:
// any caller observing the cached value observes all effects of computing it.
//
// # Failure is not cached
//
// If the wrapped producer fails, the error propagates to the caller and the
// memoizer stays uninitialized. A later Force retries the computation
// rather than replaying a cached failure.
//
// # Idempotence
//
// Memoize is idempotent by reference identity: memoizing a producer that is
// already a memoized wrapper (or a constant from Of) returns the same
// instance, never stacking wrappers.
//
// # Errors vs panics
//
// Computations that can fail report it through the error return of Force,
// and the error propagates unmodified to whoever triggered the force.
// Contract violations (a nil producer, a nil function argument) panic at
// the point of construction.
package lazy
