// Package engine implements the falling-block game-state engine: piece geometry,
// rotation with wall kicks, gravity and collision, line clears, scoring and leveling.
// It has no dependencies on terminal rendering or input so it can be driven and
// tested deterministically.
package engine

// Vec2 is an integer board coordinate. X grows to the right, Y grows downward.
// It is used both for absolute board positions and for offsets relative to a piece anchor.
type Vec2 struct {
	X, Y int
}

// Add returns the component-wise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
