package seq

import (
	"math"

	"github.com/on-the-ground/recurs_ive_go/trampoline"
)

// Fold reduces s left to right: f(...f(f(init, e0), e1)..., eN).
// The traversal is trampolined, so arbitrarily long sequences reduce in
// constant stack space. Does not terminate on infinite input.
// Panics if f is nil.
func Fold[T, R any](s Seq[T], init R, f func(R, T) R) (R, error) {
	if f == nil {
		panic("seq: nil function")
	}
	step := trampoline.Fix2(func(
		self func(Seq[T], R) trampoline.Trampoline[R],
	) func(Seq[T], R) trampoline.Trampoline[R] {
		return func(cur Seq[T], acc R) trampoline.Trampoline[R] {
			return trampoline.Bounce(func() (trampoline.Trampoline[R], error) {
				h, t, ok, err := Uncons(cur)
				if err != nil {
					var zero trampoline.Trampoline[R]
					return zero, err
				}
				if !ok {
					return trampoline.Land(acc), nil
				}
				return self(t, f(acc, h)), nil
			})
		}
	})
	return trampoline.Run(step(s, init))
}

// Length counts the elements of s without forcing any head. The count is
// trampolined; it panics rather than silently wrapping if the length
// exceeds the int range. Does not terminate on infinite input.
func Length[T any](s Seq[T]) (int, error) {
	var step func(Seq[T], int) trampoline.Trampoline[int]
	step = func(cur Seq[T], n int) trampoline.Trampoline[int] {
		return trampoline.Bounce(func() (trampoline.Trampoline[int], error) {
			_, t, ok, err := UnconsLazy(cur)
			if err != nil {
				var zero trampoline.Trampoline[int]
				return zero, err
			}
			if !ok {
				return trampoline.Land(n), nil
			}
			if n == math.MaxInt {
				panic("seq: length overflows int")
			}
			return step(t, n+1), nil
		})
	}
	return trampoline.Run(step(s, 0))
}

// Reverse returns the elements of s in reverse order. The result is
// deferred; the first deconstruction performs the full (trampolined)
// traversal of s, though heads stay unforced. Does not terminate on
// infinite input.
func Reverse[T any](s Seq[T]) Seq[T] {
	return Lazy(func() (Seq[T], error) {
		var step func(Seq[T], Seq[T]) trampoline.Trampoline[Seq[T]]
		step = func(cur, acc Seq[T]) trampoline.Trampoline[Seq[T]] {
			return trampoline.Bounce(func() (trampoline.Trampoline[Seq[T]], error) {
				h, t, ok, err := UnconsLazy(cur)
				if err != nil {
					var zero trampoline.Trampoline[Seq[T]]
					return zero, err
				}
				if !ok {
					return trampoline.Land(acc), nil
				}
				return step(t, ConsLazy(h, acc)), nil
			})
		}
		return trampoline.Run(step(s, Empty[T]()))
	})
}

// EqualBy reports whether a and b have the same length and pairwise-equal
// elements in order, under eq. The walk is trampolined and stops at the
// first difference; heads are forced only once both sides are known
// non-empty, so a length mismatch never computes the unmatched element.
// Panics if eq is nil.
func EqualBy[T any](a, b Seq[T], eq func(T, T) bool) (bool, error) {
	if eq == nil {
		panic("seq: nil equality function")
	}
	var step func(Seq[T], Seq[T]) trampoline.Trampoline[bool]
	step = func(x, y Seq[T]) trampoline.Trampoline[bool] {
		return trampoline.Bounce(func() (trampoline.Trampoline[bool], error) {
			var zero trampoline.Trampoline[bool]
			hx, tx, okX, err := UnconsLazy(x)
			if err != nil {
				return zero, err
			}
			hy, ty, okY, err := UnconsLazy(y)
			if err != nil {
				return zero, err
			}
			switch {
			case !okX && !okY:
				return trampoline.Land(true), nil
			case okX != okY:
				return trampoline.Land(false), nil
			}
			vx, err := hx.Force()
			if err != nil {
				return zero, err
			}
			vy, err := hy.Force()
			if err != nil {
				return zero, err
			}
			if !eq(vx, vy) {
				return trampoline.Land(false), nil
			}
			return step(tx, ty), nil
		})
	}
	return trampoline.Run(step(a, b))
}

// Equal is EqualBy under ==. Empty equals only Empty.
func Equal[T comparable](a, b Seq[T]) (bool, error) {
	return EqualBy(a, b, func(x, y T) bool { return x == y })
}

// Any reports whether some element satisfies pred, short-circuiting on the
// first hit. Does not terminate on infinite input with no hit.
// Panics if pred is nil.
func Any[T any](s Seq[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("seq: nil predicate")
	}
	var step func(Seq[T]) trampoline.Trampoline[bool]
	step = func(cur Seq[T]) trampoline.Trampoline[bool] {
		return trampoline.Bounce(func() (trampoline.Trampoline[bool], error) {
			h, t, ok, err := Uncons(cur)
			if err != nil {
				var zero trampoline.Trampoline[bool]
				return zero, err
			}
			if !ok {
				return trampoline.Land(false), nil
			}
			if pred(h) {
				return trampoline.Land(true), nil
			}
			return step(t), nil
		})
	}
	return trampoline.Run(step(s))
}

// All reports whether every element satisfies pred, short-circuiting on
// the first miss. Panics if pred is nil.
func All[T any](s Seq[T], pred func(T) bool) (bool, error) {
	if pred == nil {
		panic("seq: nil predicate")
	}
	hit, err := Any(s, func(v T) bool { return !pred(v) })
	if err != nil {
		return false, err
	}
	return !hit, nil
}

// Contains reports whether v occurs in s, short-circuiting on the first
// occurrence.
func Contains[T comparable](s Seq[T], v T) (bool, error) {
	return Any(s, func(x T) bool { return x == v })
}
