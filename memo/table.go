package memo

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Keyable is a documentation constraint: a comparable value or a
// fmt.Stringer. Stringers are keyed by their String form.
type Keyable = any

// Key is a resolved table key: a comparable value or a string.
type Key = any

// Table is a concurrent, bounded memo table keyed by tuples of Keys.
//
// Internally a table is a trie of sync.Maps in two generations. Stores go
// to the live generation; when it fills up the generations rotate: the
// live one retires to a lookup-only fallback slot and the previous
// fallback is dropped.
type Table[V any] struct {
	live     atomic.Pointer[sync.Map]
	fallback atomic.Pointer[sync.Map]
	size     atomic.Uint32
	capacity uint32

	rotateMu sync.Mutex
}

// NewTable returns an empty table that rotates after capacity entries.
// Panics if capacity is zero.
func NewTable[V any](capacity uint32) *Table[V] {
	if capacity == 0 {
		panic("memo: capacity must be greater than 0")
	}
	t := &Table[V]{capacity: capacity}
	t.live.Store(&sync.Map{})
	return t
}

// Load returns the value stored under keys, consulting the live
// generation first and the previous one as fallback. The descent is
// read-only: a miss allocates nothing. Panics if keys is empty.
func (t *Table[V]) Load(keys []Key) (V, bool) {
	if v, ok := lookup[V](t.live.Load(), keys); ok {
		return v, true
	}
	if fb := t.fallback.Load(); fb != nil {
		return lookup[V](fb, keys)
	}
	var zero V
	return zero, false
}

// Store records value under keys in the live generation, rotating the
// generations once it fills up. Panics if keys is empty.
func (t *Table[V]) Store(keys []Key, value V) {
	m, last := descend(t.live.Load(), keys)
	m.Store(last, value)
	if t.size.Add(1) >= t.capacity {
		t.rotate()
	}
}

// rotate retires the live generation to the fallback slot and resets the
// counter. The mutex serializes racing rotators; the re-check under it
// lets exactly one of the stores that crossed the threshold together
// perform the swap.
func (t *Table[V]) rotate() {
	t.rotateMu.Lock()
	defer t.rotateMu.Unlock()
	if t.size.Load() < t.capacity {
		return
	}
	t.fallback.Store(t.live.Load())
	t.live.Store(&sync.Map{})
	t.size.Store(0)
}

// descend walks the trie along all keys but the last, creating interior
// maps as needed, and returns the leaf map plus the final key.
func descend(m *sync.Map, keys []Key) (*sync.Map, Key) {
	n := len(keys)
	if n == 0 {
		panic("memo: empty key tuple")
	}
	for _, k := range keys[:n-1] {
		v, ok := m.Load(k)
		if !ok {
			v, _ = m.LoadOrStore(k, &sync.Map{})
		}
		m = v.(*sync.Map)
	}
	return m, keys[n-1]
}

// lookup walks the trie without modifying it; a missing interior node is
// a miss.
func lookup[V any](m *sync.Map, keys []Key) (V, bool) {
	n := len(keys)
	if n == 0 {
		panic("memo: empty key tuple")
	}
	var zero V
	for _, k := range keys[:n-1] {
		v, ok := m.Load(k)
		if !ok {
			return zero, false
		}
		m = v.(*sync.Map)
	}
	v, ok := m.Load(keys[n-1])
	if !ok {
		return zero, false
	}
	val, ok := v.(V)
	return val, ok
}

// resolveKey renders an argument as a table key: Stringers by their
// String form, everything else as itself.
func resolveKey(arg Keyable) Key {
	if s, ok := arg.(fmt.Stringer); ok {
		return s.String()
	}
	return arg
}
