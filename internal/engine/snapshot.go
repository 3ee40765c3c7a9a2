package engine

// SettledCell is one occupied board cell.
type SettledCell struct {
	Shape Shape
	Pos   Vec2
}

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Active    Piece
	ActivePos Vec2
	HasActive bool
	Next      Piece
	Score     int
	Lines     int
	Level     int
	Settled   []SettledCell // row-major
}

// Snapshot returns a copy of the current state that later calls do not modify.
func (g *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Tick:  g.ticks,
		Phase: g.phase,
		Next:  g.next,
		Score: g.score,
		Lines: g.lines,
		Level: g.Level(),
	}
	s.Active, s.ActivePos, s.HasActive = g.ActivePiece()
	s.Settled = make([]SettledCell, 0, g.board.Count())
	g.board.ForEach(func(shape Shape, pos Vec2) {
		s.Settled = append(s.Settled, SettledCell{Shape: shape, Pos: pos})
	})
	return s
}
