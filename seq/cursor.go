package seq

import "iter"

// Cursor is a single-pass cursor over a sequence, in the style of
// bufio.Scanner: call Next until it returns false, then check Err to
// distinguish exhaustion from failure.
//
//	cur := seq.NewCursor(s)
//	for cur.Next() {
//	    use(cur.Value())
//	}
//	if err := cur.Err(); err != nil { ... }
//
// The cursor advances through the sequence; the sequence itself is never
// mutated, and other references to it are unaffected.
type Cursor[T any] struct {
	rest Seq[T]
	val  T
	err  error
	done bool
}

// NewCursor returns a cursor positioned before the first element of s.
// Panics if s is nil.
func NewCursor[T any](s Seq[T]) *Cursor[T] {
	if s == nil {
		panic("seq: nil sequence")
	}
	return &Cursor[T]{rest: s}
}

// Next advances to the next element, forcing its head. It returns false
// when the sequence is exhausted or a force failed.
func (c *Cursor[T]) Next() bool {
	if c.done {
		return false
	}
	h, t, ok, err := Uncons(c.rest)
	if err != nil {
		c.err = err
		c.done = true
		return false
	}
	if !ok {
		c.done = true
		return false
	}
	c.val = h
	c.rest = t
	return true
}

// Value returns the element produced by the last successful Next.
func (c *Cursor[T]) Value() T {
	return c.val
}

// Err returns the first error encountered while advancing, if any.
func (c *Cursor[T]) Err() error {
	return c.err
}

// Each visits every element in order, forcing heads as it goes. An error
// returned by fn stops the traversal and propagates; so does an error
// raised by forcing. Does not terminate on infinite input.
// Panics if fn is nil.
func Each[T any](s Seq[T], fn func(T) error) error {
	if fn == nil {
		panic("seq: nil function")
	}
	cur := NewCursor(s)
	for cur.Next() {
		if err := fn(cur.Value()); err != nil {
			return err
		}
	}
	return cur.Err()
}

// Values exposes the sequence as a range-over-func iterator of
// (element, error) pairs. A forcing failure yields exactly one pair with a
// non-nil error and then stops.
//
//	for v, err := range seq.Values(s) {
//	    if err != nil { ... }
//	    use(v)
//	}
func Values[T any](s Seq[T]) iter.Seq2[T, error] {
	if s == nil {
		panic("seq: nil sequence")
	}
	return func(yield func(T, error) bool) {
		cur := NewCursor(s)
		for cur.Next() {
			if !yield(cur.Value(), nil) {
				return
			}
		}
		if err := cur.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

// ToSlice forces the whole sequence into a slice.
// Does not terminate on infinite input.
func ToSlice[T any](s Seq[T]) ([]T, error) {
	var out []T
	err := Each(s, func(v T) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
