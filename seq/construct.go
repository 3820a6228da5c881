package seq

import (
	"iter"

	"github.com/on-the-ground/recurs_ive_go/option"
	"github.com/on-the-ground/recurs_ive_go/pair"
)

// Of returns the sequence of the given values, in order.
func Of[T any](vs ...T) Seq[T] {
	return FromSlice(vs)
}

// FromSlice returns the sequence of the slice's values, in order.
// The slice is read eagerly; later mutation of it does not affect the
// sequence... except through shared pointer elements, as usual.
func FromSlice[T any](vs []T) Seq[T] {
	s := Empty[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		s = Cons(vs[i], s)
	}
	return s
}

// FromMap returns the sequence of the map's entries as pairs.
// The iteration order is unspecified, like the map's own.
func FromMap[K comparable, V any](m map[K]V) Seq[pair.Pair[K, V]] {
	s := Empty[pair.Pair[K, V]]()
	for k, v := range m {
		s = Cons(pair.Of(k, v), s)
	}
	return s
}

// FromString returns the sequence of the string's runes, in order.
func FromString(s string) Seq[rune] {
	return FromSlice([]rune(s))
}

// FromIter adapts a range-over-func iterator into a lazy sequence.
//
// The iterator is a single-pass source: it is pulled element by element as
// the sequence is deconstructed, and each position is pulled at most once.
// If the resulting sequence must be replayed by independent consumers that
// race each other, memoize it explicitly with Memoize. Panics if it is nil.
func FromIter[T any](it iter.Seq[T]) Seq[T] {
	if it == nil {
		panic("seq: nil iterator")
	}
	next, stop := iter.Pull(it)
	var gen func() (Seq[T], error)
	gen = func() (Seq[T], error) {
		v, ok := next()
		if !ok {
			stop()
			return Empty[T](), nil
		}
		return ConsTail(v, gen), nil
	}
	return Lazy(gen)
}

// FromChan adapts a channel into a lazy sequence. The channel is drained
// element by element as the sequence is deconstructed; the sequence ends
// when the channel is closed. Single-pass, like FromIter. Panics if ch is
// nil.
func FromChan[T any](ch <-chan T) Seq[T] {
	if ch == nil {
		panic("seq: nil channel")
	}
	var gen func() (Seq[T], error)
	gen = func() (Seq[T], error) {
		v, ok := <-ch
		if !ok {
			return Empty[T](), nil
		}
		return ConsTail(v, gen), nil
	}
	return Lazy(gen)
}

// Unfold builds a sequence from a seed and a step function. Each step
// yields Some(pair of next element and next seed) to continue, or None to
// end the sequence. The whole construction is deferred: step does not run
// until the sequence is deconstructed. Panics if step is nil.
func Unfold[S, T any](seed S, step func(S) option.Option[pair.Pair[T, S]]) Seq[T] {
	if step == nil {
		panic("seq: nil step function")
	}
	var gen func(S) Seq[T]
	gen = func(s S) Seq[T] {
		return Lazy(func() (Seq[T], error) {
			next := step(s)
			if next.IsNone() {
				return Empty[T](), nil
			}
			p := next.MustGet()
			return Cons(p.Fst, gen(p.Snd)), nil
		})
	}
	return gen(seed)
}

// Iterate returns the infinite sequence seed, f(seed), f(f(seed)), ...
// Panics if f is nil.
func Iterate[T any](seed T, f func(T) T) Seq[T] {
	if f == nil {
		panic("seq: nil function")
	}
	return ConsTail(seed, func() (Seq[T], error) {
		return Iterate(f(seed), f), nil
	})
}

// Repeat returns the infinite sequence v, v, v, ...
// It is a single self-referential cell, so it occupies constant space no
// matter how far it is traversed.
func Repeat[T any](v T) Seq[T] {
	var s Seq[T]
	s = ConsTail(v, func() (Seq[T], error) {
		return s, nil
	})
	return s
}

// Range returns the sequence from, from+1, ..., to-1, built lazily.
func Range(from, to int) Seq[int] {
	if from >= to {
		return Empty[int]()
	}
	return ConsTail(from, func() (Seq[int], error) {
		return Range(from+1, to), nil
	})
}

// RangeN returns the sequence 0, 1, ..., n-1.
func RangeN(n int) Seq[int] {
	return Range(0, n)
}
