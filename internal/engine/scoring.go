package engine

import (
	"fmt"
	"time"
)

// LinesPerLevel is the number of cleared lines needed to advance one level.
const LinesPerLevel = 5

// lineClearScores maps rows cleared by one settle to the points awarded.
var lineClearScores = [...]int{0, 40, 100, 300, 1200}

// LineClearScore returns the points for clearing n rows at once.
// A single piece spans at most four rows, so n > 4 is a logic error and panics.
func LineClearScore(n int) int {
	if n < 0 || n >= len(lineClearScores) {
		panic(fmt.Sprintf("engine: impossible line clear count %d", n))
	}
	return lineClearScores[n]
}

// LevelForLines returns the level reached after clearing lines rows in total.
// Levels start at 1.
func LevelForLines(lines int) int {
	return lines/LinesPerLevel + 1
}

// Timing controls how fast the active piece falls.
// The period at level L is Base - Step*min(L-1, CapLevel).
type Timing struct {
	Base     time.Duration
	Step     time.Duration
	CapLevel int
}

// DefaultTiming returns the standard fall speed schedule.
func DefaultTiming() Timing {
	return Timing{
		Base:     600 * time.Millisecond,
		Step:     50 * time.Millisecond,
		CapLevel: 10,
	}
}

// Period returns the time between gravity ticks at the given level.
func (t Timing) Period(level int) time.Duration {
	idx := min(max(level-1, 0), t.CapLevel)
	return t.Base - t.Step*time.Duration(idx)
}

// Validate checks that the period stays positive at every level.
func (t Timing) Validate() error {
	if t.CapLevel < 0 {
		return fmt.Errorf("engine: negative cap level %d", t.CapLevel)
	}
	if t.Step < 0 {
		return fmt.Errorf("engine: negative step %v", t.Step)
	}
	if p := t.Period(t.CapLevel + 1); p <= 0 {
		return fmt.Errorf("engine: fall period %v at capped level is not positive", p)
	}
	return nil
}
