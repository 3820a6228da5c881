package seq

import "github.com/on-the-ground/recurs_ive_go/lazy"

// Memoize returns a sequence in which every head producer and every proxy
// resolution is memoized, so each underlying computation runs at most once
// no matter how often or from how many goroutines the result is
// deconstructed.
//
// Memoization is structural but deferred: proxies are not forced, their
// eventual contents are memoized on resolution. When memoizing would add
// no new wrapper anywhere (every head already memoized, every tail already
// covered) the same reference is returned, so re-memoizing a memoized
// sequence is a no-op by reference identity.
//
// Panics if s is nil.
func Memoize[T any](s Seq[T]) Seq[T] {
	if s == nil {
		panic("seq: nil sequence")
	}
	switch v := s.(type) {
	case emptySeq[T]:
		return s
	case *proxy[T]:
		if v.memoized {
			return s
		}
		mp := &proxy[T]{memoized: true}
		mp.step = lazy.Memoize(lazy.Func[Seq[T]](func() (Seq[T], error) {
			r, err := v.resolve()
			if err != nil {
				return nil, err
			}
			return Memoize(r), nil
		}))
		return mp
	case *cell[T]:
		return memoizeSpine(v)
	default:
		panic("seq: unknown sequence variant")
	}
}

// memoizeSpine memoizes a run of eager cells iteratively. Recursing per
// cell would grow the stack with the spine length; instead the spine is
// collected, its terminator memoized, and the cells rebuilt back to front.
// A cell whose head producer and tail both come back identical is reused
// as is, which is what makes Memoize(Memoize(s)) return s itself.
func memoizeSpine[T any](c *cell[T]) Seq[T] {
	var spine []*cell[T]
	var cur Seq[T] = c
	for {
		cc, ok := cur.(*cell[T])
		if !ok {
			break
		}
		spine = append(spine, cc)
		cur = cc.tail
	}

	tail := Memoize(cur) // terminator: emptySeq or *proxy, no recursion into cells
	for i := len(spine) - 1; i >= 0; i-- {
		cc := spine[i]
		head := lazy.Memoize(cc.head)
		if head == cc.head && tail == cc.tail {
			tail = cc
		} else {
			tail = &cell[T]{head: head, tail: tail}
		}
	}
	return tail
}
