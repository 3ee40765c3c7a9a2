package engine

import "fmt"

// KickCount is the number of offsets tried for every rotation transition.
const KickCount = 5

// transition is a (from, to) rotation pair.
type transition struct {
	from, to Rotation
}

// Offsets are in board coordinates (y grows downward). The first entry of every
// list is always the in-place attempt.
var (
	kicksJLSTZ = map[transition][KickCount]Vec2{
		{0, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{1, 0}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{1, 2}: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		{2, 1}: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
		{2, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		{3, 2}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{3, 0}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		{0, 3}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	}

	kicksI = map[transition][KickCount]Vec2{
		{0, 1}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{1, 0}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{1, 2}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
		{2, 1}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{2, 3}: {{0, 0}, {2, 0}, {-1, 0}, {2, -1}, {-1, 2}},
		{3, 2}: {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
		{3, 0}: {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
		{0, 3}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	}
)

// Kicks returns the ordered offsets to try when rotating a piece of shape s
// from one rotation state to another.
//
// The O shape never kicks and callers must not ask for it. Asking for the O shape
// or for a transition that is not a single clockwise or counter-clockwise step panics.
func Kicks(s Shape, from, to Rotation) [KickCount]Vec2 {
	var table map[transition][KickCount]Vec2
	switch s {
	case ShapeI:
		table = kicksI
	case ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL:
		table = kicksJLSTZ
	case ShapeO:
		panic("engine: O blocks do not need to be kicked")
	default:
		panic(fmt.Sprintf("engine: no kick table for shape %v", s))
	}

	kicks, ok := table[transition{from: from, to: to}]
	if !ok {
		panic(fmt.Sprintf("engine: undefined kick transition %d->%d for shape %v", from, to, s))
	}
	return kicks
}
