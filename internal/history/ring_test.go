package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRing_PushWithinCapacity(t *testing.T) {
	r := New[int](3)
	r.Push(1)
	r.Push(2)

	assert.Equal(t, 2, r.Len())
	assert.Equal(t, []int{1, 2}, r.Items())

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, 2, last)

	prev, ok := r.Previous()
	assert.True(t, ok)
	assert.Equal(t, 1, prev)
}

func TestRing_EvictsOldest(t *testing.T) {
	r := New[int](3)
	for i := 1; i <= 5; i++ {
		r.Push(i)
	}

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []int{3, 4, 5}, r.Items())
}

func TestRing_Empty(t *testing.T) {
	r := New[string](2)

	_, ok := r.Last()
	assert.False(t, ok)
	_, ok = r.Previous()
	assert.False(t, ok)
	_, ok = r.At(-1)
	assert.False(t, ok)
	assert.Empty(t, r.Items())
}

func TestRing_SingleValueHasNoPrevious(t *testing.T) {
	r := New[int](2)
	r.Push(9)

	_, ok := r.Previous()
	assert.False(t, ok)
}

func TestRing_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New[int](0).Cap())
}

func TestRing_ReplaceKeepsNewest(t *testing.T) {
	r := New[int](2)
	r.Push(100)

	r.Replace([]int{1, 2, 3})

	assert.Equal(t, []int{2, 3}, r.Items())
}
