package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSourceDeterministic(t *testing.T) {
	a := NewRandSource(42)
	b := NewRandSource(42)
	for range 100 {
		va := a.Range(3, 10)
		require.Equal(t, va, b.Range(3, 10))
		require.GreaterOrEqual(t, va, 3)
		require.Less(t, va, 10)
	}
}

func TestRandSourceEmptyRangePanics(t *testing.T) {
	assert.Panics(t, func() { NewRandSource(1).Range(5, 5) })
}

func TestFixedSource(t *testing.T) {
	src := FixedSource(10)
	for range 10 {
		assert.Equal(t, 10, src.Range(0, 100))
	}
	assert.Panics(t, func() { src.Range(0, 10) }, "upper bound is exclusive")
	assert.Panics(t, func() { src.Range(11, 20) })
}

func TestSequenceSourceCycles(t *testing.T) {
	src := NewSequenceSource(1, 4, 2)
	var got []int
	for range 6 {
		got = append(got, src.Range(0, 7))
	}
	assert.Equal(t, []int{1, 4, 2, 1, 4, 2}, got)
	assert.Panics(t, func() { NewSequenceSource() })
}

func TestShapeIndexRoundTrip(t *testing.T) {
	for i, s := range AllShapes {
		assert.Equal(t, i, ShapeIndex(s))
		assert.Equal(t, s, randomShape(FixedSource(ShapeIndex(s))))
	}
	assert.Panics(t, func() { ShapeIndex(noShape) })
}
