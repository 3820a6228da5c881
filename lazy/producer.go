package lazy

// Producer is a deferred computation yielding a value of type T.
//
// Force runs the computation and returns its result. Unless wrapped by
// Memoize, every call to Force runs the computation again.
type Producer[T any] interface {
	Force() (T, error)
}

// Func adapts a plain function to the Producer interface.
type Func[T any] func() (T, error)

// Force implements Producer.
func (f Func[T]) Force() (T, error) {
	return f()
}

// Defer returns a producer backed by fn.
// Panics if fn is nil.
func Defer[T any](fn func() (T, error)) Producer[T] {
	if fn == nil {
		panic("lazy: nil producer function")
	}
	return Func[T](fn)
}

// Pure returns a producer backed by a computation that cannot fail.
// Panics if fn is nil.
func Pure[T any](fn func() T) Producer[T] {
	if fn == nil {
		panic("lazy: nil producer function")
	}
	return Func[T](func() (T, error) {
		return fn(), nil
	})
}

// constant is a producer holding an already-computed value.
// It counts as memoized: Memoize returns it unchanged.
type constant[T any] struct {
	value T
}

func (c *constant[T]) Force() (T, error) {
	return c.value, nil
}

// Of returns a producer that always yields v without computing anything.
func Of[T any](v T) Producer[T] {
	return &constant[T]{value: v}
}
