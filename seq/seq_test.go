package seq_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/recurs_ive_go/lazy"
	"github.com/on-the-ground/recurs_ive_go/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSlice[T any](t *testing.T, s seq.Seq[T]) []T {
	t.Helper()
	vs, err := seq.ToSlice(s)
	require.NoError(t, err)
	return vs
}

func TestEmpty_MatchDispatchesToEmpty(t *testing.T) {
	got, err := seq.Match(seq.Empty[int](),
		func(h int, tail seq.Seq[int]) (string, error) { return "cons", nil },
		func() (string, error) { return "empty", nil },
	)
	require.NoError(t, err)
	assert.Equal(t, "empty", got)
}

func TestCons_MatchDispatchesToCons(t *testing.T) {
	s := seq.Cons(1, seq.Cons(2, seq.Empty[int]()))

	got, err := seq.Match(s,
		func(h int, tail seq.Seq[int]) (int, error) {
			rest := mustSlice(t, tail)
			assert.Equal(t, []int{2}, rest)
			return h, nil
		},
		func() (int, error) { return -1, nil },
	)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestFourConstructors_SameContents(t *testing.T) {
	tail := seq.Cons(2, seq.Empty[int]())
	delayedTail := func() (seq.Seq[int], error) { return seq.Cons(2, seq.Empty[int]()), nil }
	head := lazy.Of(1)

	for name, s := range map[string]seq.Seq[int]{
		"eager/eager": seq.Cons(1, tail),
		"lazy/eager":  seq.ConsLazy(head, tail),
		"eager/lazy":  seq.ConsTail(1, delayedTail),
		"lazy/lazy":   seq.ConsLazyTail(head, delayedTail),
	} {
		assert.Equal(t, []int{1, 2}, mustSlice(t, s), name)
	}
}

func TestMatchLazy_DoesNotForceHead(t *testing.T) {
	forced := false
	s := seq.ConsLazy(lazy.Defer(func() (int, error) {
		forced = true
		return 1, nil
	}), seq.Empty[int]())

	_, err := seq.MatchLazy(s,
		func(h lazy.Producer[int], tail seq.Seq[int]) (struct{}, error) {
			return struct{}{}, nil
		},
		func() (struct{}, error) { return struct{}{}, nil },
	)
	require.NoError(t, err)
	assert.False(t, forced, "lazy deconstruction must leave the head deferred")
}

func TestProxyTransparency_NestedLazyEqualsDirect(t *testing.T) {
	direct := seq.Of(1, 2, 3)
	nested := seq.Lazy(func() (seq.Seq[int], error) {
		return seq.Lazy(func() (seq.Seq[int], error) {
			return seq.Of(1, 2, 3), nil
		}), nil
	})

	eq, err := seq.Equal(direct, nested)
	require.NoError(t, err)
	assert.True(t, eq, "lazy(lazy(x)) must deconstruct identically to x")
}

func TestProxy_SupplierInvokedAtMostOnce(t *testing.T) {
	var invocations int
	s := seq.Lazy(func() (seq.Seq[int], error) {
		invocations++
		return seq.Of(1), nil
	})

	for i := 0; i < 3; i++ {
		_, _, ok, err := seq.Uncons(s)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 1, invocations)
}

func TestProxy_FailedSupplierIsRetried(t *testing.T) {
	boom := errors.New("boom")
	var invocations int
	s := seq.Lazy(func() (seq.Seq[int], error) {
		invocations++
		if invocations == 1 {
			return nil, boom
		}
		return seq.Of(9), nil
	})

	_, _, _, err := seq.Uncons(s)
	assert.ErrorIs(t, err, boom)

	h, _, ok, err := seq.Uncons(s)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 9, h)
	assert.Equal(t, 2, invocations, "failure is not cached")
}

func TestPersistence_RepeatedDeconstructionIsStable(t *testing.T) {
	s := seq.Of("a", "b", "c")

	h1, t1, ok1, err := seq.Uncons(s)
	require.NoError(t, err)
	h2, t2, ok2, err := seq.Uncons(s)
	require.NoError(t, err)

	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, h1, h2)
	assert.Equal(t, mustSlice(t, t1), mustSlice(t, t2))
}

func TestPersistence_DerivedOpsDoNotMutateSource(t *testing.T) {
	s := seq.Of(1, 2, 3)

	_ = mustSlice(t, seq.Reverse(s))
	_ = mustSlice(t, seq.Map(s, func(v int) int { return v * 10 }))
	_ = mustSlice(t, seq.Filter(s, func(v int) bool { return v != 2 }))

	assert.Equal(t, []int{1, 2, 3}, mustSlice(t, s))
}

func TestHeadProducerError_Propagates(t *testing.T) {
	boom := errors.New("boom")
	s := seq.ConsLazy(lazy.Defer(func() (int, error) {
		return 0, boom
	}), seq.Empty[int]())

	_, err := seq.ToSlice(s)
	assert.ErrorIs(t, err, boom)
}

func TestNilContractPanics(t *testing.T) {
	assert.Panics(t, func() { seq.Lazy[int](nil) })
	assert.Panics(t, func() { seq.Cons(1, nil) })
	assert.Panics(t, func() { seq.ConsLazy[int](nil, seq.Empty[int]()) })
	assert.Panics(t, func() { seq.ConsLazy(lazy.Of(1), nil) })
	assert.Panics(t, func() { seq.ConsLazyTail[int](nil, func() (seq.Seq[int], error) { return seq.Empty[int](), nil }) })
	assert.Panics(t, func() { seq.UnconsLazy[int](nil) })

	nilSupplier := seq.Lazy(func() (seq.Seq[int], error) { return nil, nil })
	assert.Panics(t, func() { _, _, _, _ = seq.Uncons(nilSupplier) })
}
