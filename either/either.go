// Package either provides an immutable two-sided union type.
//
// An Either[L, R] holds exactly one of two values: a Left of type L or a
// Right of type R. By convention Left carries the failure and Right the
// success, but the type itself is symmetric: Swap exchanges the sides.
package either

import "github.com/on-the-ground/recurs_ive_go/option"

// Either holds either a Left of type L or a Right of type R.
// The zero Either is a Left holding L's zero value.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left returns an Either holding l on the left side.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right returns an Either holding r on the right side.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsLeft reports whether the left side is populated.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether the right side is populated.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value and true, or the zero value and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.isRight {
		var zero L
		return zero, false
	}
	return e.left, true
}

// GetRight returns the right value and true, or the zero value and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if !e.isRight {
		var zero R
		return zero, false
	}
	return e.right, true
}

// Swap exchanges the two sides.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// Match dispatches to exactly one of the continuations.
func Match[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if onLeft == nil || onRight == nil {
		panic("either: nil continuation")
	}
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Map transforms the right value, passing a Left through unchanged.
func Map[L, R, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if f == nil {
		panic("either: nil function")
	}
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return Right[L](f(e.right))
}

// MapLeft transforms the left value, passing a Right through unchanged.
func MapLeft[L, R, T any](e Either[L, R], f func(L) T) Either[T, R] {
	if f == nil {
		panic("either: nil function")
	}
	if e.isRight {
		return Right[T](e.right)
	}
	return Left[T, R](f(e.left))
}

// FlatMap sequences two right-biased computations.
func FlatMap[L, R, T any](e Either[L, R], f func(R) Either[L, T]) Either[L, T] {
	if f == nil {
		panic("either: nil function")
	}
	if !e.isRight {
		return Left[L, T](e.left)
	}
	return f(e.right)
}

// ToOption keeps the right value and discards the left side.
func ToOption[L, R any](e Either[L, R]) option.Option[R] {
	if !e.isRight {
		return option.None[R]()
	}
	return option.Some(e.right)
}
