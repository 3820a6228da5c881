package option_test

import (
	"errors"
	"testing"

	"github.com/on-the-ground/recurs_ive_go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSomeNone_Basics(t *testing.T) {
	s := option.Some(3)
	n := option.None[int]()

	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	assert.True(t, n.IsNone())

	v, err := s.Get()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	_, err = n.Get()
	assert.ErrorIs(t, err, option.ErrNoValue)
}

func TestZeroOptionIsNone(t *testing.T) {
	var o option.Option[string]
	assert.True(t, o.IsNone())
}

func TestGetOrError_CustomFailure(t *testing.T) {
	custom := errors.New("missing user")

	_, err := option.None[int]().GetOrError(custom)
	assert.ErrorIs(t, err, custom)

	v, err := option.Some(9).GetOrError(custom)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	assert.Panics(t, func() { option.Some(1).GetOrError(nil) })
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, "x", option.Some("x").MustGet())
	assert.Panics(t, func() { option.None[string]().MustGet() })
}

func TestFallbacks(t *testing.T) {
	assert.Equal(t, 5, option.None[int]().GetOrElse(5))
	assert.Equal(t, 1, option.Some(1).GetOrElse(5))

	called := false
	assert.Equal(t, 1, option.Some(1).GetOrElseGet(func() int {
		called = true
		return 5
	}))
	assert.False(t, called, "fallback must not run for Some")

	alt := option.Some(8)
	assert.Equal(t, alt, option.None[int]().OrElse(alt))
	assert.Equal(t, option.Some(2), option.Some(2).OrElse(alt))
}

func TestFromPtr(t *testing.T) {
	v := 4
	assert.Equal(t, option.Some(4), option.FromPtr(&v))
	assert.True(t, option.FromPtr[int](nil).IsNone())
}

func TestMatch_ExactlyOneContinuation(t *testing.T) {
	got := option.Match(option.Some(2),
		func(v int) string { return "some" },
		func() string { return "none" },
	)
	assert.Equal(t, "some", got)

	got = option.Match(option.None[int](),
		func(v int) string { return "some" },
		func() string { return "none" },
	)
	assert.Equal(t, "none", got)
}

func TestMapFlatMapFilter(t *testing.T) {
	doubled := option.Map(option.Some(2), func(v int) int { return v * 2 })
	assert.Equal(t, option.Some(4), doubled)
	assert.True(t, option.Map(option.None[int](), func(v int) int { return v }).IsNone())

	half := func(v int) option.Option[int] {
		if v%2 != 0 {
			return option.None[int]()
		}
		return option.Some(v / 2)
	}
	assert.Equal(t, option.Some(2), option.FlatMap(option.Some(4), half))
	assert.True(t, option.FlatMap(option.Some(3), half).IsNone())

	even := func(v int) bool { return v%2 == 0 }
	assert.Equal(t, option.Some(4), option.Filter(option.Some(4), even))
	assert.True(t, option.Filter(option.Some(3), even).IsNone())
}
