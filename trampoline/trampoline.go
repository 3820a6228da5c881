// Package trampoline evaluates arbitrarily deep tail recursion in constant
// stack space.
//
// A Trampoline is in one of exactly two states: landed, carrying the final
// value, or bouncing, carrying a deferred call that yields the next
// trampoline. Run drives a chain of bounces with an iterative loop, so
// stack depth stays O(1) no matter how many steps the computation takes.
//
// The pattern for a deep tail-recursive algorithm is: express each
// recursive step as Bounce wrapping the next call, each base case as Land,
// and hand the initial trampoline to Run:
//
//	func countdown(n int) trampoline.Trampoline[int] {
//	    if n == 0 {
//	        return trampoline.Land(0)
//	    }
//	    return trampoline.Bounce(func() (trampoline.Trampoline[int], error) {
//	        return countdown(n - 1), nil
//	    })
//	}
//
//	v, err := trampoline.Run(countdown(1_000_000))
//
// A step function that never lands makes Run loop forever in bounded
// stack. That is a liveness bug in the step function, distinct
// from the stack-overflow bug this package exists to prevent.
package trampoline

// Trampoline is one step of a stack-safe recursive computation: either a
// landed final value or a bounce deferring the next step.
type Trampoline[A any] struct {
	value A
	next  func() (Trampoline[A], error)
}

// Land returns a terminal trampoline carrying the final value.
func Land[A any](v A) Trampoline[A] {
	return Trampoline[A]{value: v}
}

// Bounce returns a non-terminal trampoline deferring the next step.
// Panics if next is nil.
func Bounce[A any](next func() (Trampoline[A], error)) Trampoline[A] {
	if next == nil {
		panic("trampoline: nil bounce")
	}
	return Trampoline[A]{next: next}
}

// Done reports whether the trampoline has landed.
func (t Trampoline[A]) Done() bool {
	return t.next == nil
}

// Run drives t to its landed value, replacing each bounce with the
// trampoline it yields. The loop is iterative: stack depth does not grow
// with the number of steps. A failing step aborts the run and its error
// propagates unmodified.
func Run[A any](t Trampoline[A]) (A, error) {
	for !t.Done() {
		next, err := t.next()
		if err != nil {
			var zero A
			return zero, err
		}
		t = next
	}
	return t.value, nil
}
