package seq

import (
	"sync"

	"github.com/on-the-ground/recurs_ive_go/lazy"
)

// Seq is an immutable, possibly infinite sequence of T.
//
// The implementations are exactly emptySeq, *cell, and *proxy; the
// unexported method keeps the variant set closed.
type Seq[T any] interface {
	// resolve collapses any proxy layers and returns a *cell or emptySeq.
	resolve() (Seq[T], error)
}

// emptySeq is the terminal sentinel. It is a zero-size value type, so
// every instance is identical; the accessor below stands in for a shared
// singleton without any element-typed state.
type emptySeq[T any] struct{}

func (e emptySeq[T]) resolve() (Seq[T], error) {
	return e, nil
}

// Empty returns the empty sequence of T.
func Empty[T any]() Seq[T] {
	return emptySeq[T]{}
}

// cell is a non-empty node: a head producer and a tail sequence.
// Both are fixed at construction; the node never mutates.
type cell[T any] struct {
	head lazy.Producer[T]
	tail Seq[T]
}

func (c *cell[T]) resolve() (Seq[T], error) {
	return c, nil
}

// proxy defers a sequence's identity behind a supplier. step performs one
// unwrap and is memoized, so the supplier runs at most once; final caches
// the fully collapsed Cell/Empty after the first deconstruction.
type proxy[T any] struct {
	step     lazy.Producer[Seq[T]]
	memoized bool

	mu    sync.Mutex
	final Seq[T]
}

func (p *proxy[T]) loadFinal() Seq[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.final
}

func (p *proxy[T]) storeFinal(s Seq[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.final == nil {
		p.final = s
	}
}

func (p *proxy[T]) resolve() (Seq[T], error) {
	// Walk the proxy chain iteratively: recursion here would grow the
	// stack with the nesting depth, and operations like Drop build long
	// chains on purpose.
	var visited []*proxy[T]
	var cur Seq[T] = p
	for {
		px, ok := cur.(*proxy[T])
		if !ok {
			break
		}
		if f := px.loadFinal(); f != nil {
			cur = f
			continue
		}
		visited = append(visited, px)
		next, err := px.step.Force()
		if err != nil {
			return nil, err
		}
		cur = next
	}
	for _, px := range visited {
		px.storeFinal(cur)
	}
	return cur, nil
}

// Lazy returns a sequence whose identity is resolved on first
// deconstruction by invoking supplier. If the supplier yields another
// deferred sequence, resolution keeps unwrapping until a genuine Cell or
// Empty appears. The supplier runs at most once; a failing supplier is
// retried on the next deconstruction, mirroring lazy.Memoize.
//
// Panics if supplier is nil, or (at resolution time) if it returns a
// nil sequence.
func Lazy[T any](supplier func() (Seq[T], error)) Seq[T] {
	if supplier == nil {
		panic("seq: nil supplier")
	}
	return &proxy[T]{
		step: lazy.Memoize(lazy.Func[Seq[T]](func() (Seq[T], error) {
			s, err := supplier()
			if err != nil {
				return nil, err
			}
			if s == nil {
				panic("seq: supplier returned nil sequence")
			}
			return s, nil
		})),
	}
}

// Cons returns a cell with an eager head and an eager tail.
// Panics if tail is nil.
func Cons[T any](head T, tail Seq[T]) Seq[T] {
	if tail == nil {
		panic("seq: nil tail")
	}
	return &cell[T]{head: lazy.Of(head), tail: tail}
}

// ConsLazy returns a cell with a deferred head and an eager tail.
// Panics if head or tail is nil.
func ConsLazy[T any](head lazy.Producer[T], tail Seq[T]) Seq[T] {
	if head == nil {
		panic("seq: nil head producer")
	}
	if tail == nil {
		panic("seq: nil tail")
	}
	return &cell[T]{head: head, tail: tail}
}

// ConsTail returns a cell with an eager head and a deferred tail.
func ConsTail[T any](head T, tail func() (Seq[T], error)) Seq[T] {
	return &cell[T]{head: lazy.Of(head), tail: Lazy(tail)}
}

// ConsLazyTail returns a cell with a deferred head and a deferred tail.
// Panics if head is nil.
func ConsLazyTail[T any](head lazy.Producer[T], tail func() (Seq[T], error)) Seq[T] {
	if head == nil {
		panic("seq: nil head producer")
	}
	return &cell[T]{head: head, tail: Lazy(tail)}
}

// Match deconstructs s, dispatching to exactly one continuation: onCons
// for a non-empty sequence, onEmpty otherwise. The head is forced before
// dispatch; algorithms that might discard the head must use MatchLazy
// instead. Panics if either continuation is nil.
func Match[T, R any](
	s Seq[T],
	onCons func(head T, tail Seq[T]) (R, error),
	onEmpty func() (R, error),
) (R, error) {
	if onCons == nil || onEmpty == nil {
		panic("seq: nil continuation")
	}
	var zero R
	hp, tail, ok, err := UnconsLazy(s)
	if err != nil {
		return zero, err
	}
	if !ok {
		return onEmpty()
	}
	h, err := hp.Force()
	if err != nil {
		return zero, err
	}
	return onCons(h, tail)
}

// MatchLazy deconstructs s like Match but passes the head still deferred.
// Panics if either continuation is nil.
func MatchLazy[T, R any](
	s Seq[T],
	onCons func(head lazy.Producer[T], tail Seq[T]) (R, error),
	onEmpty func() (R, error),
) (R, error) {
	if onCons == nil || onEmpty == nil {
		panic("seq: nil continuation")
	}
	hp, tail, ok, err := UnconsLazy(s)
	if err != nil {
		var zero R
		return zero, err
	}
	if !ok {
		return onEmpty()
	}
	return onCons(hp, tail)
}

// Uncons resolves s and returns its forced head, tail, and true, or
// (zero, nil, false) for an empty sequence.
func Uncons[T any](s Seq[T]) (T, Seq[T], bool, error) {
	var zero T
	hp, tail, ok, err := UnconsLazy(s)
	if err != nil || !ok {
		return zero, nil, ok, err
	}
	h, err := hp.Force()
	if err != nil {
		return zero, nil, false, err
	}
	return h, tail, true, nil
}

// UnconsLazy resolves s and returns its head producer, tail, and true, or
// (nil, nil, false) for an empty sequence. The head is not forced.
// Panics if s is nil.
func UnconsLazy[T any](s Seq[T]) (lazy.Producer[T], Seq[T], bool, error) {
	if s == nil {
		panic("seq: nil sequence")
	}
	r, err := s.resolve()
	if err != nil {
		return nil, nil, false, err
	}
	c, ok := r.(*cell[T])
	if !ok {
		return nil, nil, false, nil
	}
	return c.head, c.tail, true, nil
}
