package seq_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/on-the-ground/recurs_ive_go/lazy"
	"github.com/on-the-ground/recurs_ive_go/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	sum, err := seq.Fold(seq.RangeN(101), 0, func(acc, v int) int { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, 5050, sum)

	concat, err := seq.Fold(seq.Of("a", "b", "c"), "", func(acc, v string) string { return acc + v })
	require.NoError(t, err)
	assert.Equal(t, "abc", concat)

	zero, err := seq.Fold(seq.Empty[int](), 42, func(acc, v int) int { return acc * v })
	require.NoError(t, err)
	assert.Equal(t, 42, zero, "folding empty yields the initial value")
}

func TestLength(t *testing.T) {
	n, err := seq.Length(seq.Of(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = seq.Length(seq.Empty[string]())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestLength_DoesNotForceHeads(t *testing.T) {
	forced := false
	s := seq.ConsLazy(lazy.Defer(func() (int, error) {
		forced = true
		return 1, nil
	}), seq.Empty[int]())

	n, err := seq.Length(s)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.False(t, forced, "counting must not force element values")
}

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, mustSlice(t, seq.Reverse(seq.Of(1, 2, 3))))
	assert.Empty(t, mustSlice(t, seq.Reverse(seq.Empty[int]())))
}

func TestEqual_Semantics(t *testing.T) {
	type tc struct {
		name string
		a, b seq.Seq[int]
		want bool
	}
	cases := []tc{
		{"both empty", seq.Empty[int](), seq.Empty[int](), true},
		{"empty vs non-empty", seq.Empty[int](), seq.Of(1), false},
		{"same elements", seq.Of(1, 2, 3), seq.Of(1, 2, 3), true},
		{"different order", seq.Of(1, 2, 3), seq.Of(3, 2, 1), false},
		{"prefix", seq.Of(1, 2), seq.Of(1, 2, 3), false},
		{"eager vs lazy construction", seq.Of(1, 2, 3), seq.Take(seq.Iterate(1, func(v int) int { return v + 1 }), 3), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := seq.Equal(c.a, c.b)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEqualBy(t *testing.T) {
	caseless := func(x, y string) bool { return strings.EqualFold(x, y) }
	got, err := seq.EqualBy(seq.Of("A", "b"), seq.Of("a", "B"), caseless)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestEqual_LengthMismatchLeavesExtraHeadUnforced(t *testing.T) {
	forced := false
	longer := seq.Cons(1, seq.ConsLazy(lazy.Defer(func() (int, error) {
		forced = true
		return 2, nil
	}), seq.Empty[int]()))

	got, err := seq.Equal(seq.Of(1), longer)
	require.NoError(t, err)
	assert.False(t, got)
	assert.False(t, forced, "the unmatched head's value is never needed")
}

func TestEqual_ShortCircuitsOnInfiniteInput(t *testing.T) {
	nats := seq.Iterate(1, func(v int) int { return v + 1 })
	got, err := seq.Equal(seq.Of(1, 2, 99), nats)
	require.NoError(t, err)
	assert.False(t, got, "a difference at index 2 must end the comparison")
}

func TestAnyAllContains(t *testing.T) {
	s := seq.Of(1, 2, 3, 4)

	got, err := seq.Any(s, func(v int) bool { return v > 3 })
	require.NoError(t, err)
	assert.True(t, got)

	got, err = seq.All(s, func(v int) bool { return v > 0 })
	require.NoError(t, err)
	assert.True(t, got)

	got, err = seq.All(s, func(v int) bool { return v%2 == 0 })
	require.NoError(t, err)
	assert.False(t, got)

	got, err = seq.Contains(s, 3)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = seq.Contains(s, 9)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestAny_ShortCircuitsOnInfiniteInput(t *testing.T) {
	nats := seq.Iterate(1, func(v int) int { return v + 1 })
	got, err := seq.Contains(nats, 500)
	require.NoError(t, err)
	assert.True(t, got)
}

func TestFold_ProducerErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	s := seq.Cons(1, seq.ConsLazy(lazy.Defer(func() (int, error) {
		return 0, boom
	}), seq.Empty[int]()))

	_, err := seq.Fold(s, 0, func(acc, v int) int { return acc + v })
	assert.ErrorIs(t, err, boom)

	_, err = seq.Equal(s, seq.Of(1, 2))
	assert.ErrorIs(t, err, boom)
}
