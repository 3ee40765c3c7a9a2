// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                  - Start menu
//	tetris play             - Start a game right away
//	tetris scores           - Show the leaderboard (--history for past games)
//	tetris serve            - Start SSH server for remote play
//	tetris config           - Print the default configuration file
//
// Global flags:
//
//	--config <path>       - Configuration file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--width, --height     - Board size in cells
//	--fps <rate>          - Frame rate (default: 60)
//	--seed <value>        - RNG seed for reproducible gameplay
//	--db <path>           - Game history database (default: ~/.tetris/history.db)
//	--leaderboard <path>  - Leaderboard file (default: from config)
//	--log <path>          - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagWidth       int
	flagHeight      int
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagLeaderboard string
	flagLogPath     string
	flagLogLevel    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game in your terminal",
	Long: `Stack the falling pieces, clear full rows and climb the leaderboard.

Available commands:
  play     - Start a game right away
  scores   - View the leaderboard and game history
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  tetris
  tetris play --difficulty hard
  tetris play --width 12 --height 24 --seed 42
  tetris scores --history
  tetris serve --ssh :2222`,
	Run: func(cmd *cobra.Command, args []string) {
		runSession(false)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to a configuration YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	flags.IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	flags.IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.tetris/history.db", "Path to the game history database")
	flags.StringVar(&flagLeaderboard, "leaderboard", "", "Path to the leaderboard file (default from config)")
	flags.StringVar(&flagLogPath, "log", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
