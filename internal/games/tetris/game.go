// Package tetris drives the falling-block engine from platform frames: it
// collects input into poll periods, handles pause and speed controls, and
// draws the playfield into a core.Screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
)

const (
	// GameOverDelay is how long the game-over banner stays up before the game reports Finished.
	GameOverDelay = 3 * time.Second

	maxSpeedShift = 3 // speed modifier range is 1/8x to 8x
)

// movementActions are collected between input polls and applied together.
var movementActions = []core.Action{
	core.ActionLeft,
	core.ActionRight,
	core.ActionRotateCW,
	core.ActionRotateCCW,
	core.ActionDrop,
}

// Game runs one engine session for the platform.
type Game struct {
	state  *engine.GameState
	timing engine.Timing
	cfg    core.RuntimeConfig
	frame  time.Duration
	tick   uint64

	pending   core.InputFrame
	sincePoll time.Duration

	paused     bool
	speedShift int // elapsed game time is scaled by 2^speedShift
	played     time.Duration
	overFor    time.Duration
	forfeited  bool
}

// New creates a game with the given gravity schedule. Call Reset before Step.
func New(timing engine.Timing) *Game {
	return &Game{timing: timing}
}

// Reset starts a new session seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWithSource(cfg, engine.NewRandSource(cfg.Seed))
}

// ResetWithSource starts a new session drawing pieces from src.
func (g *Game) ResetWithSource(cfg core.RuntimeConfig, src engine.RandomSource) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.frame = time.Second / time.Duration(cfg.TickRate)
	g.state = engine.NewWithTiming(cfg.BoardW, cfg.BoardH, src, g.timing)
	g.tick = 0
	g.pending = core.NewInputFrame()
	g.sincePoll = 0
	g.paused = false
	g.speedShift = 0
	g.played = 0
	g.overFor = 0
	g.forfeited = false
}

// Step advances the session by one platform frame.
func (g *Game) Step(in core.InputFrame) core.GameStatus {
	g.tick++

	if g.state.IsGameOver() || g.forfeited {
		g.overFor += g.frame
		return g.State()
	}

	if in.Has(core.ActionBack) {
		g.forfeited = true
		return g.State()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	switch {
	case in.Has(core.ActionSpeedReset):
		g.speedShift = 0
	case in.Has(core.ActionSpeedUp):
		g.speedShift = core.Clamp(g.speedShift+1, -maxSpeedShift, maxSpeedShift)
	case in.Has(core.ActionSpeedDown):
		g.speedShift = core.Clamp(g.speedShift-1, -maxSpeedShift, maxSpeedShift)
	}

	if g.paused {
		g.pending.Clear()
		return g.State()
	}

	for _, a := range movementActions {
		if in.Has(a) {
			g.pending.Set(a)
		}
	}
	g.sincePoll += g.frame
	if g.sincePoll >= g.cfg.InputPoll {
		g.sincePoll = 0
		g.applyPending()
	}

	g.played += g.frame
	g.state.Update(g.scaled(g.frame))
	return g.State()
}

// applyPending feeds the commands collected since the last poll to the engine.
func (g *Game) applyPending() {
	if g.pending.Empty() {
		return
	}
	g.state.MoveActiveHorizontal(g.pending.Axis(core.ActionLeft, core.ActionRight))
	g.state.Rotate(g.pending.Axis(core.ActionRotateCCW, core.ActionRotateCW))
	if g.pending.Has(core.ActionDrop) {
		g.state.QuickDrop()
	}
	g.pending.Clear()
}

func (g *Game) scaled(d time.Duration) time.Duration {
	if g.speedShift >= 0 {
		return d << g.speedShift
	}
	return d >> -g.speedShift
}

// State returns the status summary for the platform.
func (g *Game) State() core.GameStatus {
	return core.GameStatus{
		Score:    g.state.Score(),
		Lines:    g.state.Lines(),
		Level:    g.state.Level(),
		GameOver: g.state.IsGameOver() || g.forfeited,
		Paused:   g.paused,
		Finished: g.forfeited || (g.state.IsGameOver() && g.overFor >= GameOverDelay),
	}
}

// SpeedFactor returns the current game speed multiplier.
func (g *Game) SpeedFactor() float64 {
	if g.speedShift >= 0 {
		return float64(int(1) << g.speedShift)
	}
	return 1 / float64(int(1)<<-g.speedShift)
}

// Played returns the unpaused time spent in this session.
func (g *Game) Played() time.Duration {
	return g.played
}

// Seed returns the seed the session was started with.
func (g *Game) Seed() int64 {
	return g.cfg.Seed
}

// PiecesSpawned returns how many pieces have entered the board.
func (g *Game) PiecesSpawned() int {
	return g.state.PiecesSpawned()
}
