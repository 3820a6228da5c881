// Package pair provides an immutable two-element tuple.
package pair

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Of returns the pair (a, b).
func Of[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Swap returns the pair with its elements exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}

// Match applies f to both elements.
func Match[A, B, R any](p Pair[A, B], f func(A, B) R) R {
	if f == nil {
		panic("pair: nil function")
	}
	return f(p.Fst, p.Snd)
}

// MapFst transforms the first element.
func MapFst[A, B, T any](p Pair[A, B], f func(A) T) Pair[T, B] {
	if f == nil {
		panic("pair: nil function")
	}
	return Pair[T, B]{Fst: f(p.Fst), Snd: p.Snd}
}

// MapSnd transforms the second element.
func MapSnd[A, B, T any](p Pair[A, B], f func(B) T) Pair[A, T] {
	if f == nil {
		panic("pair: nil function")
	}
	return Pair[A, T]{Fst: p.Fst, Snd: f(p.Snd)}
}
