package lazy

import "sync"

// memoized guards the transition from uninitialized to initialized with a
// per-instance mutex. sync.Once is deliberately not used here: Once marks
// itself done even when the function fails, which would cache the failure.
type memoized[T any] struct {
	mu       sync.Mutex
	producer Producer[T]
	value    T
	done     bool
}

func (m *memoized[T]) Force() (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.done {
		return m.value, nil
	}
	v, err := m.producer.Force()
	if err != nil {
		var zero T
		return zero, err
	}
	m.value = v
	m.done = true
	m.producer = nil // release the computation for GC
	return v, nil
}

// Memoize wraps p so that the underlying computation executes at most once.
//
// The first Force runs p; concurrent callers block until it finishes and
// then observe the same result. A failed computation is not cached: the
// error propagates and a later Force retries p.
//
// Memoizing an already-memoized producer, or a constant from Of, is a no-op
// returning the same instance. Panics if p is nil.
func Memoize[T any](p Producer[T]) Producer[T] {
	if p == nil {
		panic("lazy: nil producer")
	}
	switch p.(type) {
	case *memoized[T], *constant[T]:
		return p
	}
	return &memoized[T]{producer: p}
}
