package stream

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnce_SecondPassFails(t *testing.T) {
	seq := Once(FromSlice([]int{1, 2, 3}))

	first, err := Collect(seq)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, first)

	_, err = Collect(seq)
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestOnce_EarlyBreakStillConsumes(t *testing.T) {
	seq := Once(FromSlice([]int{1, 2, 3}))

	for range seq {
		break
	}

	_, err := Collect(seq)
	assert.ErrorIs(t, err, ErrConsumed)
}

func TestMap_Lazy(t *testing.T) {
	pulled := 0
	src := func(yield func(int, error) bool) {
		for i := 1; i <= 3; i++ {
			pulled++
			if !yield(i, nil) {
				return
			}
		}
	}

	for v, err := range Map(src, func(v int) int { return v * 10 }) {
		require.NoError(t, err)
		assert.Equal(t, 10, v)
		break
	}
	assert.Equal(t, 1, pulled)
}

func TestMap_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	src := func(yield func(int, error) bool) {
		if !yield(1, nil) {
			return
		}
		yield(0, boom)
	}

	got, err := Collect(Map(src, func(v int) string { return "x" }))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestCollect_Empty(t *testing.T) {
	got, err := Collect(FromSlice([]string{}))
	require.NoError(t, err)
	assert.Equal(t, []string{}, got)

	_, err = Collect(Fail[string](errors.New("x")))
	assert.Error(t, err)
}
