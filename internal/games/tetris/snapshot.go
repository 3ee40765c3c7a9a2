package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/engine"
)

// Snapshot captures the driver and engine state for determinism testing.
type Snapshot struct {
	Tick       uint64
	Engine     engine.Snapshot
	Paused     bool
	SpeedShift int
	Played     time.Duration
	Forfeited  bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Engine:     g.state.Snapshot(),
		Paused:     g.paused,
		SpeedShift: g.speedShift,
		Played:     g.played,
		Forfeited:  g.forfeited,
	}
}
