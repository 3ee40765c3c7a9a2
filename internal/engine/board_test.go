package engine

import "testing"

func TestBoardCollides(t *testing.T) {
	b := NewBoard(10, 20)
	b.Fill(5, 10, ShapeT)
	o := NewPiece(ShapeO) // cells (1,0) (2,0) (1,1) (2,1)

	tests := []struct {
		name     string
		pos      Vec2
		expected bool
	}{
		{"open space", Vec2{0, 0}, false},
		{"against left wall", Vec2{-1, 0}, false},
		{"through left wall", Vec2{-2, 0}, true},
		{"against right wall", Vec2{7, 0}, false},
		{"through right wall", Vec2{8, 0}, true},
		{"resting on floor", Vec2{0, 18}, false},
		{"through floor", Vec2{0, 19}, true},
		{"above the board", Vec2{3, -5}, false},
		{"partially above the board", Vec2{3, -1}, false},
		{"above the board through a wall", Vec2{-3, -5}, true},
		{"overlapping settled cell", Vec2{4, 9}, true},
		{"next to settled cell", Vec2{2, 9}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Collides(o, tc.pos); got != tc.expected {
				t.Errorf("Collides(O, %v) = %v, expected %v", tc.pos, got, tc.expected)
			}
		})
	}
}

func TestBoardSettleAndAt(t *testing.T) {
	b := NewBoard(4, 4)
	b.Settle(NewPiece(ShapeO), Vec2{-1, 2})

	for _, pos := range []Vec2{{0, 2}, {1, 2}, {0, 3}, {1, 3}} {
		s, ok := b.At(pos.X, pos.Y)
		if !ok || s != ShapeO {
			t.Errorf("At(%v) = %v, %v; expected O, true", pos, s, ok)
		}
	}
	if _, ok := b.At(2, 2); ok {
		t.Error("At(2, 2) should be empty")
	}
	if _, ok := b.At(-1, 0); ok {
		t.Error("off-board positions should report empty")
	}
	if b.Count() != 4 {
		t.Errorf("Count() = %d, expected 4", b.Count())
	}
}

func TestBoardSettlePanics(t *testing.T) {
	tests := []struct {
		name string
		pos  Vec2
	}{
		{"onto occupied cell", Vec2{-1, 2}},
		{"above the board", Vec2{1, -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(4, 4)
			b.Fill(0, 3, ShapeI)
			defer func() {
				if recover() == nil {
					t.Error("Settle should panic")
				}
			}()
			b.Settle(NewPiece(ShapeO), tc.pos)
		})
	}
}

func TestBoardClearRowShiftsRowsAbove(t *testing.T) {
	b := NewBoard(3, 4)
	b.Fill(0, 0, ShapeI)
	b.Fill(1, 1, ShapeT)
	for x := range 3 {
		b.Fill(x, 2, ShapeS)
	}
	b.Fill(2, 3, ShapeZ)

	b.ClearRow(2)

	expected := map[Vec2]Shape{
		{0, 1}: ShapeI,
		{1, 2}: ShapeT,
		{2, 3}: ShapeZ,
	}
	got := make(map[Vec2]Shape)
	b.ForEach(func(s Shape, pos Vec2) {
		got[pos] = s
	})
	if len(got) != len(expected) {
		t.Fatalf("got %d cells %v, expected %v", len(got), got, expected)
	}
	for pos, s := range expected {
		if got[pos] != s {
			t.Errorf("cell %v = %v, expected %v", pos, got[pos], s)
		}
	}
	if b.RowCount(0) != 0 {
		t.Error("top row should be empty after a clear")
	}
}

func TestBoardClearFullRows(t *testing.T) {
	b := NewBoard(2, 5)
	for _, y := range []int{1, 3, 4} {
		b.Fill(0, y, ShapeO)
		b.Fill(1, y, ShapeO)
	}
	b.Fill(0, 2, ShapeJ)

	// Only rows 2..4 are checked, so row 1 survives even though it is full.
	cleared := b.ClearFullRows(2, 5)
	if cleared != 2 {
		t.Fatalf("ClearFullRows() = %d, expected 2", cleared)
	}
	if !b.RowFull(3) {
		t.Error("row 1 should have shifted down to row 3")
	}
	if s, ok := b.At(0, 4); !ok || s != ShapeJ {
		t.Errorf("J cell should have shifted to row 4, got %v %v", s, ok)
	}
	if b.Count() != 3 {
		t.Errorf("Count() = %d, expected 3", b.Count())
	}
}

func TestBoardClearFullRowsClampsRange(t *testing.T) {
	b := NewBoard(1, 2)
	b.Fill(0, 1, ShapeL)
	if got := b.ClearFullRows(-3, 10); got != 1 {
		t.Errorf("ClearFullRows() = %d, expected 1", got)
	}
}
