package engine

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Shape identifies one of the seven tetrominoes.
// The zero value is reserved for empty board cells and is never a valid piece shape.
type Shape uint8

const (
	noShape Shape = iota
	ShapeI
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// AllShapes lists every playable shape in draw order.
// Random piece selection indexes into this array.
var AllShapes = [7]Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case noShape:
		return "-"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// Valid reports whether s is one of the seven playable shapes.
func (s Shape) Valid() bool {
	return s >= ShapeI && s <= ShapeL
}

// Glyph returns the character used to draw a cell of this shape.
func (s Shape) Glyph() rune {
	switch s {
	case ShapeI:
		return 'O'
	case ShapeO:
		return 'X'
	case ShapeT:
		return '+'
	case ShapeS:
		return '>'
	case ShapeZ:
		return '<'
	case ShapeJ:
		return '/'
	case ShapeL:
		return '\\'
	}
	return ' '
}

// Color returns the display color of this shape.
func (s Shape) Color() core.Color {
	switch s {
	case ShapeI:
		return core.ColorWhite
	case ShapeO:
		return core.ColorRed
	case ShapeT:
		return core.ColorCyan
	case ShapeS:
		return core.ColorGreen
	case ShapeZ:
		return core.ColorMagenta
	case ShapeJ:
		return core.ColorYellow
	case ShapeL:
		return core.ColorBlue
	}
	return core.ColorDefault
}

// Rotation is one of the four orientation states, 0 through 3, clockwise.
type Rotation uint8

// RotationCount is the number of distinct orientation states.
const RotationCount = 4

// Rotate returns the adjacent rotation state.
// dir must be -1 (counter-clockwise), 0 (none) or +1 (clockwise); anything else panics.
func (r Rotation) Rotate(dir int) Rotation {
	switch dir {
	case -1:
		return (r + RotationCount - 1) % RotationCount
	case 0:
		return r
	case 1:
		return (r + 1) % RotationCount
	}
	panic(fmt.Sprintf("engine: invalid rotation direction %d", dir))
}

// cellTable holds the canonical 4x4 layouts for every shape and rotation.
// Layouts are hand-authored rather than computed so kicks line up with the
// canonical orientation of each piece.
var cellTable = map[Shape][RotationCount][4]Vec2{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// Piece is an immutable shape in a given orientation.
type Piece struct {
	Shape    Shape
	Rotation Rotation
}

// NewPiece returns a piece of the given shape in its spawn orientation.
func NewPiece(s Shape) Piece {
	return Piece{Shape: s}
}

// Cells returns the four cell offsets of the piece relative to its anchor.
func (p Piece) Cells() [4]Vec2 {
	rotations, ok := cellTable[p.Shape]
	if !ok {
		panic(fmt.Sprintf("engine: no geometry for shape %v", p.Shape))
	}
	return rotations[p.Rotation%RotationCount]
}

// Rotated returns a copy of the piece turned by dir (-1, 0 or +1).
func (p Piece) Rotated(dir int) Piece {
	return Piece{Shape: p.Shape, Rotation: p.Rotation.Rotate(dir)}
}

// Left returns the smallest x offset among the piece's cells.
func (p Piece) Left() int {
	minX, _, _, _ := p.bounds()
	return minX
}

// Top returns the smallest y offset among the piece's cells.
func (p Piece) Top() int {
	_, minY, _, _ := p.bounds()
	return minY
}

// Width returns the horizontal extent of the piece in its current rotation.
func (p Piece) Width() int {
	minX, _, maxX, _ := p.bounds()
	return maxX - minX + 1
}

// Height returns the vertical extent of the piece in its current rotation.
func (p Piece) Height() int {
	_, minY, _, maxY := p.bounds()
	return maxY - minY + 1
}

// bounds computes the bounding box of the current rotation's cells.
func (p Piece) bounds() (minX, minY, maxX, maxY int) {
	cells := p.Cells()
	minX, minY = cells[0].X, cells[0].Y
	maxX, maxY = cells[0].X, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}
	return minX, minY, maxX, maxY
}

// String returns a compact description such as "T@1".
func (p Piece) String() string {
	return fmt.Sprintf("%v@%d", p.Shape, p.Rotation)
}
