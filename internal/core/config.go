package core

import "time"

// RuntimeConfig is what the platform hands a game when it starts one.
type RuntimeConfig struct {
	BoardW    int           // board width in cells
	BoardH    int           // board height in cells
	TickRate  int           // frames per second driven by the platform
	InputPoll time.Duration // minimum time between applied movement commands
	Seed      int64         // 0 means the platform picks one from the clock
}

// DefaultConfig returns the classic 10x20 setup.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:    10,
		BoardH:    20,
		TickRate:  60,
		InputPoll: 125 * time.Millisecond,
	}
}

// GameStatus is the summary a game reports to the platform after every frame.
type GameStatus struct {
	Score    int
	Lines    int
	Level    int
	GameOver bool
	Paused   bool
	// Finished is set once the game-over banner has been shown long enough
	// for the platform to move on.
	Finished bool
}
