package datastructures_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vskvj3/dllist/internal/datastructures"
)

func TestRing(t *testing.T) {
	r := datastructures.NewRing[string](3)
	assert.Equal(t, 0, r.Len())

	assert.False(t, r.Push("a"))
	assert.False(t, r.Push("b"))
	assert.False(t, r.Push("c"))
	assert.True(t, r.Push("d"))

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 3, r.Cap())
	assert.Equal(t, []string{"b", "c", "d"}, slices.Collect(r.All()))

	r.Reset()
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, slices.Collect(r.All()))
}

func TestRingPanicsOnZeroCapacity(t *testing.T) {
	assert.Panics(t, func() { datastructures.NewRing[int](0) })
}
