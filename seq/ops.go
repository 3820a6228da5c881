package seq

import (
	"github.com/on-the-ground/recurs_ive_go/lazy"
	"github.com/on-the-ground/recurs_ive_go/option"
	"github.com/on-the-ground/recurs_ive_go/pair"
)

// Head returns the first element, or None for an empty sequence.
func Head[T any](s Seq[T]) (option.Option[T], error) {
	h, _, ok, err := Uncons(s)
	if err != nil || !ok {
		return option.None[T](), err
	}
	return option.Some(h), nil
}

// Tail returns the sequence without its first element, or None for an
// empty sequence. The head is not forced.
func Tail[T any](s Seq[T]) (option.Option[Seq[T]], error) {
	_, t, ok, err := UnconsLazy(s)
	if err != nil || !ok {
		return option.None[Seq[T]](), err
	}
	return option.Some(t), nil
}

// At returns the element at index i, or None when the sequence is shorter.
// Elements before i are skipped without forcing their heads.
// Panics if i is negative.
func At[T any](s Seq[T], i int) (option.Option[T], error) {
	if i < 0 {
		panic("seq: negative index")
	}
	cur := s
	for ; i > 0; i-- {
		_, t, ok, err := UnconsLazy(cur)
		if err != nil {
			return option.None[T](), err
		}
		if !ok {
			return option.None[T](), nil
		}
		cur = t
	}
	return Head(cur)
}

// Take returns the first n elements of s, lazily. Heads are not forced
// and the source is resolved only as far as the caller deconstructs, so
// Take is safe over infinite input.
func Take[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return Lazy(func() (Seq[T], error) {
		return MatchLazy(s,
			func(h lazy.Producer[T], t Seq[T]) (Seq[T], error) {
				return ConsLazy(h, Take(t, n-1)), nil
			},
			func() (Seq[T], error) {
				return Empty[T](), nil
			},
		)
	})
}

// TakeWhile returns the longest prefix of s whose elements satisfy pred.
// Heads are forced as far as the prefix extends, one past it included.
// Panics if pred is nil.
func TakeWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	if pred == nil {
		panic("seq: nil predicate")
	}
	return Lazy(func() (Seq[T], error) {
		return Match(s,
			func(h T, t Seq[T]) (Seq[T], error) {
				if !pred(h) {
					return Empty[T](), nil
				}
				return Cons(h, TakeWhile(t, pred)), nil
			},
			func() (Seq[T], error) {
				return Empty[T](), nil
			},
		)
	})
}

// Drop returns s without its first n elements, lazily. The skipped heads
// are never forced; the skip itself runs iteratively on first
// deconstruction, so a large n does not grow the stack.
func Drop[T any](s Seq[T], n int) Seq[T] {
	if n <= 0 {
		return s
	}
	return Lazy(func() (Seq[T], error) {
		cur := s
		for i := 0; i < n; i++ {
			_, t, ok, err := UnconsLazy(cur)
			if err != nil {
				return nil, err
			}
			if !ok {
				return Empty[T](), nil
			}
			cur = t
		}
		return cur, nil
	})
}

// DropWhile returns s without its longest prefix satisfying pred.
// Panics if pred is nil.
func DropWhile[T any](s Seq[T], pred func(T) bool) Seq[T] {
	if pred == nil {
		panic("seq: nil predicate")
	}
	return Lazy(func() (Seq[T], error) {
		cur := s
		for {
			h, t, ok, err := Uncons(cur)
			if err != nil {
				return nil, err
			}
			if !ok {
				return Empty[T](), nil
			}
			if !pred(h) {
				return cur, nil
			}
			cur = t
		}
	})
}

// Map returns the sequence of f applied to each element, lazily: neither
// the source heads nor f run until the corresponding element is forced.
// An error raised by the source propagates unmodified. Panics if f is nil.
func Map[T, R any](s Seq[T], f func(T) R) Seq[R] {
	if f == nil {
		panic("seq: nil function")
	}
	return Lazy(func() (Seq[R], error) {
		return MatchLazy(s,
			func(h lazy.Producer[T], t Seq[T]) (Seq[R], error) {
				mapped := lazy.Defer(func() (R, error) {
					v, err := h.Force()
					if err != nil {
						var zero R
						return zero, err
					}
					return f(v), nil
				})
				return ConsLazy(mapped, Map(t, f)), nil
			},
			func() (Seq[R], error) {
				return Empty[R](), nil
			},
		)
	})
}

// Filter returns the elements of s satisfying pred, lazily. Finding the
// next matching element forces heads up to it; a long run of rejected
// elements is skipped iteratively. Panics if pred is nil.
func Filter[T any](s Seq[T], pred func(T) bool) Seq[T] {
	if pred == nil {
		panic("seq: nil predicate")
	}
	return Lazy(func() (Seq[T], error) {
		cur := s
		for {
			h, t, ok, err := Uncons(cur)
			if err != nil {
				return nil, err
			}
			if !ok {
				return Empty[T](), nil
			}
			if pred(h) {
				return Cons(h, Filter(t, pred)), nil
			}
			cur = t
		}
	})
}

// Concat returns a followed by b, lazily. b is not resolved until a is
// exhausted. Panics if either argument is nil.
func Concat[T any](a, b Seq[T]) Seq[T] {
	if a == nil || b == nil {
		panic("seq: nil sequence")
	}
	return Lazy(func() (Seq[T], error) {
		return MatchLazy(a,
			func(h lazy.Producer[T], t Seq[T]) (Seq[T], error) {
				return ConsLazy(h, Concat(t, b)), nil
			},
			func() (Seq[T], error) {
				return b, nil
			},
		)
	})
}

// Zip pairs up the two sequences element by element, ending with the
// shorter one. Heads stay deferred until the pair itself is forced.
func Zip[A, B any](a Seq[A], b Seq[B]) Seq[pair.Pair[A, B]] {
	if a == nil || b == nil {
		panic("seq: nil sequence")
	}
	return Lazy(func() (Seq[pair.Pair[A, B]], error) {
		ha, ta, okA, err := UnconsLazy(a)
		if err != nil {
			return nil, err
		}
		hb, tb, okB, err := UnconsLazy(b)
		if err != nil {
			return nil, err
		}
		if !okA || !okB {
			return Empty[pair.Pair[A, B]](), nil
		}
		head := lazy.Defer(func() (pair.Pair[A, B], error) {
			va, err := ha.Force()
			if err != nil {
				return pair.Pair[A, B]{}, err
			}
			vb, err := hb.Force()
			if err != nil {
				return pair.Pair[A, B]{}, err
			}
			return pair.Of(va, vb), nil
		})
		return ConsLazy(head, Zip(ta, tb)), nil
	})
}
