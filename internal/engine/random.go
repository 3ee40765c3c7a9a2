package engine

import (
	"fmt"
	"math/rand"
)

// RandomSource produces uniformly distributed integers in the half-open range [low, high).
// The engine only ever calls it from the goroutine that drives the game.
type RandomSource interface {
	Range(low, high int) int
}

// RandSource is a RandomSource backed by math/rand.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a RandomSource seeded with seed.
// Two sources with the same seed produce the same sequence.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Range returns a value in [low, high).
func (r *RandSource) Range(low, high int) int {
	if high <= low {
		panic(fmt.Sprintf("engine: empty random range [%d, %d)", low, high))
	}
	return low + r.rng.Intn(high-low)
}

// FixedSource always returns the same value. The value must lie inside every
// requested range; a request that excludes it panics.
type FixedSource int

// Range returns the fixed value.
func (f FixedSource) Range(low, high int) int {
	v := int(f)
	if v < low || v >= high {
		panic(fmt.Sprintf("engine: fixed value %d outside range [%d, %d)", v, low, high))
	}
	return v
}

// SequenceSource returns its values in order, wrapping around at the end.
// Every value must lie inside the requested range.
type SequenceSource struct {
	values []int
	next   int
}

// NewSequenceSource returns a source cycling through values.
func NewSequenceSource(values ...int) *SequenceSource {
	if len(values) == 0 {
		panic("engine: sequence source needs at least one value")
	}
	return &SequenceSource{values: values}
}

// Range returns the next value of the sequence.
func (s *SequenceSource) Range(low, high int) int {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	if v < low || v >= high {
		panic(fmt.Sprintf("engine: sequence value %d outside range [%d, %d)", v, low, high))
	}
	return v
}

// ShapeIndex returns the index of s in AllShapes, for building fixed or sequence
// sources that draw specific shapes.
func ShapeIndex(s Shape) int {
	for i, candidate := range AllShapes {
		if candidate == s {
			return i
		}
	}
	panic(fmt.Sprintf("engine: %v is not a playable shape", s))
}

// randomShape draws a shape uniformly from AllShapes.
func randomShape(src RandomSource) Shape {
	return AllShapes[src.Range(0, len(AllShapes))]
}
