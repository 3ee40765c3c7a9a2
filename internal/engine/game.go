package engine

import (
	"fmt"
	"time"
)

// Phase is the state of the game's state machine.
type Phase uint8

const (
	// PhaseStartNextBlock promotes the preview piece on the next tick.
	PhaseStartNextBlock Phase = iota
	// PhaseMoveBlock has an active piece falling one row per tick.
	PhaseMoveBlock
	// PhaseGameOver is terminal.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStartNextBlock:
		return "StartNextBlock"
	case PhaseMoveBlock:
		return "MoveBlock"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// GameState is the authoritative state of one game session.
// It is not safe for concurrent use; a single driver goroutine calls every method.
type GameState struct {
	board  *Board
	rng    RandomSource
	timing Timing
	phase  Phase

	active    Piece
	activePos Vec2
	next      Piece

	score       int
	lines       int
	lastCleared int

	remainder time.Duration // time not yet consumed by a tick
	ticks     uint64
	spawned   int
}

// New creates a game on a width x height board using DefaultTiming.
func New(width, height int, src RandomSource) *GameState {
	return NewWithTiming(width, height, src, DefaultTiming())
}

// NewWithTiming creates a game with a custom fall speed schedule.
// The first preview piece is drawn immediately; the first tick promotes it.
func NewWithTiming(width, height int, src RandomSource, timing Timing) *GameState {
	if src == nil {
		panic("engine: nil random source")
	}
	if err := timing.Validate(); err != nil {
		panic(err.Error())
	}
	g := &GameState{
		board:  NewBoard(width, height),
		rng:    src,
		timing: timing,
		phase:  PhaseStartNextBlock,
	}
	g.next = NewPiece(randomShape(g.rng))
	return g
}

// Update advances the game by elapsed wall time. Every time the accumulated
// time exceeds the current fall period one tick runs and the period is
// subtracted, so a long elapsed duration can run several ticks.
// Update does nothing once the game is over.
func (g *GameState) Update(elapsed time.Duration) {
	if g.phase == PhaseGameOver || elapsed <= 0 {
		return
	}
	g.remainder += elapsed
	for g.phase != PhaseGameOver {
		period := g.TickPeriod()
		if g.remainder <= period {
			break
		}
		g.remainder -= period
		g.Tick()
	}
}

// Tick runs exactly one logical tick regardless of elapsed time.
func (g *GameState) Tick() {
	switch g.phase {
	case PhaseStartNextBlock:
		g.ticks++
		g.startNextBlock()
	case PhaseMoveBlock:
		g.ticks++
		g.moveBlock()
	case PhaseGameOver:
	}
}

// startNextBlock promotes the preview piece and draws a new preview.
func (g *GameState) startNextBlock() {
	g.active = g.next
	g.next = NewPiece(randomShape(g.rng))
	g.activePos = g.spawnPosition(g.active)
	g.spawned++
	g.phase = PhaseMoveBlock
}

// spawnPosition centers p horizontally with its lowest cell just above row 0.
func (g *GameState) spawnPosition(p Piece) Vec2 {
	return Vec2{
		X: (g.board.Width()-p.Width())/2 - p.Left(),
		Y: -p.Height() - p.Top(),
	}
}

// moveBlock drops the active piece one row, or settles it when it has landed.
func (g *GameState) moveBlock() {
	if !g.hasLanded() {
		g.activePos.Y++
		return
	}

	// A piece cannot settle while any part of it is still above the board.
	if g.activePos.Y+g.active.Top() < 0 {
		g.phase = PhaseGameOver
		return
	}

	g.board.Settle(g.active, g.activePos)

	top := g.activePos.Y + g.active.Top()
	cleared := g.board.ClearFullRows(top, top+g.active.Height())
	g.lastCleared = cleared
	g.score += LineClearScore(cleared)
	g.lines += cleared
	g.phase = PhaseStartNextBlock
}

// hasLanded reports whether the active piece rests on the floor or on a settled cell.
func (g *GameState) hasLanded() bool {
	return g.board.Collides(g.active, g.activePos.Add(Vec2{Y: 1}))
}

// MoveActiveHorizontal shifts the active piece delta columns (negative is left),
// one column at a time, stopping at the first wall or settled cell.
// It returns whether the piece moved at all. Ignored outside PhaseMoveBlock.
func (g *GameState) MoveActiveHorizontal(delta int) bool {
	if g.phase != PhaseMoveBlock || delta == 0 {
		return false
	}
	step := Vec2{X: 1}
	if delta < 0 {
		step.X = -1
		delta = -delta
	}
	moved := false
	for range delta {
		candidate := g.activePos.Add(step)
		if g.board.Collides(g.active, candidate) {
			break
		}
		g.activePos = candidate
		moved = true
	}
	return moved
}

// Rotate turns the active piece by relative (-1 counter-clockwise, +1 clockwise),
// trying each kick offset in order and keeping the first position that fits.
// It returns whether the rotation was applied. A relative of 0 is a no-op;
// values outside {-1, 0, 1} panic. Ignored outside PhaseMoveBlock.
func (g *GameState) Rotate(relative int) bool {
	if relative == 0 {
		return false
	}
	if relative != -1 && relative != 1 {
		panic(fmt.Sprintf("engine: invalid relative rotation %d", relative))
	}
	if g.phase != PhaseMoveBlock {
		return false
	}

	rotated := g.active.Rotated(relative)
	if g.active.Shape == ShapeO {
		g.active = rotated
		return true
	}

	for _, kick := range Kicks(g.active.Shape, g.active.Rotation, rotated.Rotation) {
		candidate := g.activePos.Add(kick)
		if !g.board.Collides(rotated, candidate) {
			g.active = rotated
			g.activePos = candidate
			return true
		}
	}
	return false
}

// QuickDrop moves the active piece straight down to its resting row and returns
// the number of rows it fell. It does not settle the piece: the next tick sees
// the landed piece and settles it. Ignored outside PhaseMoveBlock.
func (g *GameState) QuickDrop() int {
	if g.phase != PhaseMoveBlock {
		return 0
	}
	rows := 0
	for !g.hasLanded() {
		g.activePos.Y++
		rows++
	}
	return rows
}

// ActivePiece returns the falling piece and its anchor position.
// ok is false exactly when the phase is not PhaseMoveBlock.
func (g *GameState) ActivePiece() (p Piece, pos Vec2, ok bool) {
	if g.phase != PhaseMoveBlock {
		return Piece{}, Vec2{}, false
	}
	return g.active, g.activePos, true
}

// ToppedOut returns the piece that ended the game and where it was blocked.
// ok is false until the game is over.
func (g *GameState) ToppedOut() (p Piece, pos Vec2, ok bool) {
	if g.phase != PhaseGameOver {
		return Piece{}, Vec2{}, false
	}
	return g.active, g.activePos, true
}

// PreviewPiece returns the piece that will spawn next.
func (g *GameState) PreviewPiece() Piece {
	return g.next
}

// IsGameOver reports whether the game has ended.
func (g *GameState) IsGameOver() bool {
	return g.phase == PhaseGameOver
}

// Phase returns the current state machine phase.
func (g *GameState) Phase() Phase {
	return g.phase
}

// Score returns the accumulated points.
func (g *GameState) Score() int {
	return g.score
}

// Lines returns the total number of cleared rows.
func (g *GameState) Lines() int {
	return g.lines
}

// LastCleared returns how many rows the most recent settle cleared.
func (g *GameState) LastCleared() int {
	return g.lastCleared
}

// Level returns the current level, starting at 1.
func (g *GameState) Level() int {
	return LevelForLines(g.lines)
}

// TickPeriod returns the time between gravity ticks at the current level.
func (g *GameState) TickPeriod() time.Duration {
	return g.timing.Period(g.Level())
}

// Ticks returns the number of logical ticks run so far.
func (g *GameState) Ticks() uint64 {
	return g.ticks
}

// PiecesSpawned returns how many pieces have become active.
func (g *GameState) PiecesSpawned() int {
	return g.spawned
}

// Width returns the board width in cells.
func (g *GameState) Width() int {
	return g.board.Width()
}

// Height returns the board height in cells.
func (g *GameState) Height() int {
	return g.board.Height()
}

// ForEachSettledCell calls fn for every occupied board cell in row-major order.
func (g *GameState) ForEachSettledCell(fn func(s Shape, pos Vec2)) {
	g.board.ForEach(fn)
}
