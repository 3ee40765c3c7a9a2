package engine

import "fmt"

// Board is the grid of settled cells. Each cell is empty or remembers the
// shape that settled there so it can be drawn in that shape's color.
type Board struct {
	width  int
	height int
	cells  []Shape // row-major, len == width*height
}

// NewBoard creates an empty board of the given size.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Shape, width*height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Contains reports whether (x, y) lies on the board.
func (b *Board) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the shape settled at (x, y) and whether the cell is occupied.
// Positions off the board report empty.
func (b *Board) At(x, y int) (Shape, bool) {
	if !b.Contains(x, y) {
		return noShape, false
	}
	s := b.cells[b.index(x, y)]
	return s, s != noShape
}

// Collides reports whether piece p anchored at pos overlaps a settled cell or
// leaves the board through a side wall or the floor. Cells above row 0 are
// only checked against the side walls.
func (b *Board) Collides(p Piece, pos Vec2) bool {
	for _, c := range p.Cells() {
		x, y := pos.X+c.X, pos.Y+c.Y
		if x < 0 || x >= b.width || y >= b.height {
			return true
		}
		if y < 0 {
			continue
		}
		if b.cells[b.index(x, y)] != noShape {
			return true
		}
	}
	return false
}

// Settle writes the piece's cells into the grid. Every cell must be on the
// board and empty; anything else is a logic error and panics.
func (b *Board) Settle(p Piece, pos Vec2) {
	for _, c := range p.Cells() {
		x, y := pos.X+c.X, pos.Y+c.Y
		if !b.Contains(x, y) {
			panic(fmt.Sprintf("engine: settling %v outside the board at (%d, %d)", p, x, y))
		}
		i := b.index(x, y)
		if b.cells[i] != noShape {
			panic(fmt.Sprintf("engine: settling %v onto occupied cell (%d, %d)", p, x, y))
		}
		b.cells[i] = p.Shape
	}
}

// RowCount returns the number of occupied cells in row y.
func (b *Board) RowCount(y int) int {
	n := 0
	for _, s := range b.row(y) {
		if s != noShape {
			n++
		}
	}
	return n
}

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	return b.RowCount(y) == b.width
}

// ClearRow empties row y and shifts every row above it down by one.
// The top row becomes empty.
func (b *Board) ClearRow(y int) {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("engine: clearing row %d outside the board", y))
	}
	// Rows [0, y) move to [1, y+1); copy handles the overlap.
	copy(b.cells[b.width:(y+1)*b.width], b.cells[:y*b.width])
	clear(b.cells[:b.width])
}

// ClearFullRows checks rows [from, to) top to bottom and clears the full ones.
// It returns how many rows were cleared.
func (b *Board) ClearFullRows(from, to int) int {
	from = max(from, 0)
	to = min(to, b.height)
	cleared := 0
	for y := from; y < to; y++ {
		if b.RowFull(y) {
			b.ClearRow(y)
			cleared++
		}
	}
	return cleared
}

// ForEach calls fn for every occupied cell in row-major order.
func (b *Board) ForEach(fn func(s Shape, pos Vec2)) {
	for i, s := range b.cells {
		if s == noShape {
			continue
		}
		fn(s, Vec2{X: i % b.width, Y: i / b.width})
	}
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for _, s := range b.cells {
		if s != noShape {
			n++
		}
	}
	return n
}

// Fill marks (x, y) as occupied by shape s. Used to seed boards in tests and
// puzzles; it overwrites whatever was there.
func (b *Board) Fill(x, y int, s Shape) {
	if !b.Contains(x, y) {
		panic(fmt.Sprintf("engine: fill outside the board at (%d, %d)", x, y))
	}
	if !s.Valid() {
		panic(fmt.Sprintf("engine: fill with invalid shape %v", s))
	}
	b.cells[b.index(x, y)] = s
}

func (b *Board) row(y int) []Shape {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) index(x, y int) int {
	return y*b.width + x
}
