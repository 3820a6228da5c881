package trampoline

// Fix is a fixed-point combinator: it builds a self-referential function
// from a transformer that receives "itself" as an argument. Inside the
// transformer's body, self resolves on demand to the very function Fix
// returns, so an anonymous function can invoke itself without a named
// declaration:
//
//	fact := trampoline.Fix(func(self func(int) Trampoline[int]) func(int) Trampoline[int] {
//	    return func(n int) Trampoline[int] {
//	        ...self(n - 1)...
//	    }
//	})
//
// The self-reference is an explicit cell assigned after construction; the
// indirection costs one closure call per invocation. Panics if transform
// is nil.
func Fix[A, R any](transform func(self func(A) R) func(A) R) func(A) R {
	if transform == nil {
		panic("trampoline: nil transform")
	}
	var self func(A) R
	self = transform(func(a A) R { return self(a) })
	return self
}

// Fix2 is Fix for two-argument functions, saving callers from packing
// arguments into a tuple.
func Fix2[A, B, R any](transform func(self func(A, B) R) func(A, B) R) func(A, B) R {
	if transform == nil {
		panic("trampoline: nil transform")
	}
	var self func(A, B) R
	self = transform(func(a A, b B) R { return self(a, b) })
	return self
}
