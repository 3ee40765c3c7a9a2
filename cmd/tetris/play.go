package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game right away",
	Long: `Start playing immediately, skipping the menu.

Controls:
  A/Left      - Move left
  D/Right     - Move right
  E/Up        - Rotate clockwise
  W           - Rotate counter-clockwise
  S/Space     - Drop
  P           - Pause
  Z/X/C       - Slower / normal / faster
  Esc         - End the game
  Ctrl+C      - Quit

Difficulty options:
  easy   - Slow start, gentle speed-up
  normal - Values from the configuration
  hard   - Fast start, steep speed-up
  fixed  - Speed never increases

Examples:
  tetris play
  tetris play --difficulty easy
  tetris play --seed 42 --fps 30
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runSession(true)
	},
}

// runSession runs the interactive game on this terminal.
func runSession(skipMenu bool) {
	a, err := setup(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runErr := tui.Run(a.sessionOptions(localPlayer(), skipMenu), width, height)
	a.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// localPlayer names the player in the history when no initials are entered.
func localPlayer() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
