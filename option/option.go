// Package option provides an immutable optional-value type.
//
// An Option[T] either holds a value (Some) or holds nothing (None).
// Forcing a definite value out of a None fails with ErrNoValue, a
// dedicated signal distinguishable from every other failure; GetOrError
// lets the caller substitute a custom one.
package option

import "errors"

// ErrNoValue reports that a value was requested from an empty option.
var ErrNoValue = errors.New("option: no value present")

// Option holds either a value of type T or nothing.
// The zero Option is None.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some(*p) when p is non-nil, otherwise None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the held value, or ErrNoValue when the option is empty.
func (o Option[T]) Get() (T, error) {
	if !o.present {
		var zero T
		return zero, ErrNoValue
	}
	return o.value, nil
}

// GetOrError returns the held value, or err when the option is empty.
// Panics if err is nil.
func (o Option[T]) GetOrError(err error) (T, error) {
	if err == nil {
		panic("option: nil error")
	}
	if !o.present {
		var zero T
		return zero, err
	}
	return o.value, nil
}

// MustGet returns the held value, panicking on an empty option.
// Use when emptiness is a programming error.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic(ErrNoValue)
	}
	return o.value
}

// GetOrElse returns the held value, or def when the option is empty.
func (o Option[T]) GetOrElse(def T) T {
	if !o.present {
		return def
	}
	return o.value
}

// GetOrElseGet returns the held value, or the result of fn when the option
// is empty. fn is not invoked on a Some. Panics if fn is nil.
func (o Option[T]) GetOrElseGet(fn func() T) T {
	if fn == nil {
		panic("option: nil function")
	}
	if !o.present {
		return fn()
	}
	return o.value
}

// OrElse returns o when it holds a value, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.present {
		return o
	}
	return alt
}

// Match dispatches to exactly one of the continuations.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if onSome == nil || onNone == nil {
		panic("option: nil continuation")
	}
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Map transforms the held value, preserving emptiness.
func Map[T, R any](o Option[T], f func(T) R) Option[R] {
	if f == nil {
		panic("option: nil function")
	}
	if !o.present {
		return None[R]()
	}
	return Some(f(o.value))
}

// FlatMap transforms the held value into another option.
func FlatMap[T, R any](o Option[T], f func(T) Option[R]) Option[R] {
	if f == nil {
		panic("option: nil function")
	}
	if !o.present {
		return None[R]()
	}
	return f(o.value)
}

// Filter keeps the value only when pred accepts it.
func Filter[T any](o Option[T], pred func(T) bool) Option[T] {
	if pred == nil {
		panic("option: nil predicate")
	}
	if o.present && pred(o.value) {
		return o
	}
	return None[T]()
}
