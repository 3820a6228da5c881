package memo

// Func1 returns a memoized form of f backed by a fresh table of the
// given capacity. The wrapped function must be pure: for any argument
// it always returns the same value and has no side effects.
func Func1[A Keyable, R any](capacity uint32, f func(A) R) func(A) R {
	table := NewTable[R](capacity)
	return func(a A) R {
		keys := []Key{resolveKey(a)}
		if v, ok := table.Load(keys); ok {
			return v
		}
		v := f(a)
		table.Store(keys, v)
		return v
	}
}

// Func2 returns a memoized form of a pure two-argument function.
func Func2[A, B Keyable, R any](capacity uint32, f func(A, B) R) func(A, B) R {
	table := NewTable[R](capacity)
	return func(a A, b B) R {
		keys := []Key{resolveKey(a), resolveKey(b)}
		if v, ok := table.Load(keys); ok {
			return v
		}
		v := f(a, b)
		table.Store(keys, v)
		return v
	}
}

// Func3 returns a memoized form of a pure three-argument function.
func Func3[A, B, C Keyable, R any](capacity uint32, f func(A, B, C) R) func(A, B, C) R {
	table := NewTable[R](capacity)
	return func(a A, b B, c C) R {
		keys := []Key{resolveKey(a), resolveKey(b), resolveKey(c)}
		if v, ok := table.Load(keys); ok {
			return v
		}
		v := f(a, b, c)
		table.Store(keys, v)
		return v
	}
}

// Func1Err memoizes a fallible function. Only successful results are
// cached; after an error the next call with the same argument runs f
// again.
func Func1Err[A Keyable, R any](capacity uint32, f func(A) (R, error)) func(A) (R, error) {
	table := NewTable[R](capacity)
	return func(a A) (R, error) {
		keys := []Key{resolveKey(a)}
		if v, ok := table.Load(keys); ok {
			return v, nil
		}
		v, err := f(a)
		if err != nil {
			var zero R
			return zero, err
		}
		table.Store(keys, v)
		return v, nil
	}
}

// Func2Err memoizes a fallible two-argument function, caching only
// successful results.
func Func2Err[A, B Keyable, R any](capacity uint32, f func(A, B) (R, error)) func(A, B) (R, error) {
	table := NewTable[R](capacity)
	return func(a A, b B) (R, error) {
		keys := []Key{resolveKey(a), resolveKey(b)}
		if v, ok := table.Load(keys); ok {
			return v, nil
		}
		v, err := f(a, b)
		if err != nil {
			var zero R
			return zero, err
		}
		table.Store(keys, v)
		return v, nil
	}
}
