package engine

import "testing"

func TestPieceCellsAreDistinctAndInGrid(t *testing.T) {
	for _, s := range AllShapes {
		for r := Rotation(0); r < RotationCount; r++ {
			p := Piece{Shape: s, Rotation: r}
			seen := make(map[Vec2]bool)
			for _, c := range p.Cells() {
				if c.X < 0 || c.X > 3 || c.Y < 0 || c.Y > 3 {
					t.Errorf("%v: cell %v outside the 4x4 layout", p, c)
				}
				if seen[c] {
					t.Errorf("%v: duplicate cell %v", p, c)
				}
				seen[c] = true
			}
		}
	}
}

func TestPieceBounds(t *testing.T) {
	tests := []struct {
		piece                     Piece
		left, top, width, height int
	}{
		{Piece{ShapeI, 0}, 0, 1, 4, 1},
		{Piece{ShapeI, 1}, 2, 0, 1, 4},
		{Piece{ShapeI, 2}, 0, 2, 4, 1},
		{Piece{ShapeI, 3}, 1, 0, 1, 4},
		{Piece{ShapeO, 0}, 1, 0, 2, 2},
		{Piece{ShapeO, 3}, 1, 0, 2, 2},
		{Piece{ShapeT, 0}, 0, 0, 3, 2},
		{Piece{ShapeT, 1}, 1, 0, 2, 3},
		{Piece{ShapeT, 2}, 0, 1, 3, 2},
		{Piece{ShapeT, 3}, 0, 0, 2, 3},
		{Piece{ShapeS, 0}, 0, 0, 3, 2},
		{Piece{ShapeS, 3}, 0, 0, 2, 3},
		{Piece{ShapeZ, 1}, 1, 0, 2, 3},
		{Piece{ShapeJ, 2}, 0, 1, 3, 2},
		{Piece{ShapeL, 1}, 1, 0, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.piece.String(), func(t *testing.T) {
			if got := tc.piece.Left(); got != tc.left {
				t.Errorf("Left() = %d, expected %d", got, tc.left)
			}
			if got := tc.piece.Top(); got != tc.top {
				t.Errorf("Top() = %d, expected %d", got, tc.top)
			}
			if got := tc.piece.Width(); got != tc.width {
				t.Errorf("Width() = %d, expected %d", got, tc.width)
			}
			if got := tc.piece.Height(); got != tc.height {
				t.Errorf("Height() = %d, expected %d", got, tc.height)
			}
		})
	}
}

func TestRotationRotate(t *testing.T) {
	tests := []struct {
		from     Rotation
		dir      int
		expected Rotation
	}{
		{0, 1, 1},
		{3, 1, 0},
		{0, -1, 3},
		{2, -1, 1},
		{2, 0, 2},
	}

	for _, tc := range tests {
		if got := tc.from.Rotate(tc.dir); got != tc.expected {
			t.Errorf("Rotation(%d).Rotate(%d) = %d, expected %d", tc.from, tc.dir, got, tc.expected)
		}
	}
}

func TestRotationRotateInvalidPanics(t *testing.T) {
	for _, dir := range []int{-2, 2, 5} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Rotate(%d) should panic", dir)
				}
			}()
			Rotation(0).Rotate(dir)
		}()
	}
}

func TestRotatedDoesNotMutate(t *testing.T) {
	p := NewPiece(ShapeT)
	r := p.Rotated(1)
	if p.Rotation != 0 {
		t.Errorf("original piece rotation changed to %d", p.Rotation)
	}
	if r.Rotation != 1 || r.Shape != ShapeT {
		t.Errorf("Rotated(1) = %v, expected T@1", r)
	}
}

func TestOCellsIdenticalInEveryRotation(t *testing.T) {
	base := NewPiece(ShapeO).Cells()
	for r := Rotation(1); r < RotationCount; r++ {
		if got := (Piece{ShapeO, r}).Cells(); got != base {
			t.Errorf("O@%d cells = %v, expected %v", r, got, base)
		}
	}
}

func TestShapeGlyphsAndNames(t *testing.T) {
	seen := make(map[rune]Shape)
	for _, s := range AllShapes {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
		g := s.Glyph()
		if other, dup := seen[g]; dup {
			t.Errorf("%v and %v share glyph %q", s, other, g)
		}
		seen[g] = s
		if len(s.String()) != 1 {
			t.Errorf("String() = %q, expected a single letter", s.String())
		}
	}
	if noShape.Valid() {
		t.Error("the empty shape should not be valid")
	}
}
