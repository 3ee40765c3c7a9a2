package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/engine"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	helpHeight    = 1
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game until it finishes or the player quits.
type GameModel struct {
	game       *tetris.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	difficulty string
	keys       GameKeyMap
	help       help.Model
	input      core.InputFrame
	status     core.GameStatus
	quitting   bool
	finished   bool
}

// NewGameModel starts a game on a width x height terminal.
// A zero seed is replaced with one taken from the clock.
func NewGameModel(cfg core.RuntimeConfig, timing engine.Timing, difficulty string, width, height int) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if width <= 0 || height <= 0 {
		width, height = defaultWidth, defaultHeight
	}

	game := tetris.New(timing)
	game.Reset(cfg)

	h := help.New()
	h.Width = width

	return GameModel{
		game:       game,
		screen:     core.NewScreen(width, max(height-helpHeight, 1)),
		config:     cfg,
		difficulty: difficulty,
		keys:       DefaultGameKeyMap(),
		help:       h,
		input:      core.NewInputFrame(),
		status:     game.State(),
	}
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and advances the game on every tick.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keys.Action(msg)
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		if action != core.ActionNone {
			m.input.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleTick runs one frame. The loop stops once the game has finished.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.finished {
		return m, nil
	}
	m.status = m.game.Step(m.input)
	m.input.Clear()
	if m.status.Finished {
		m.finished = true
		return m, nil
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the game with a help line below it.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Finished reports whether the game is over and its banner has been shown.
func (m GameModel) Finished() bool {
	return m.finished
}

// IsQuitting returns true if the player asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Status returns the latest game status.
func (m GameModel) Status() core.GameStatus {
	return m.status
}

// Seed returns the seed the game was started with.
func (m GameModel) Seed() int64 {
	return m.game.Seed()
}

// Record describes the game for the history store.
func (m GameModel) Record(player string) storage.GameRecord {
	return storage.GameRecord{
		Player:     player,
		Score:      m.status.Score,
		Lines:      m.status.Lines,
		Level:      m.status.Level,
		Pieces:     m.game.PiecesSpawned(),
		Duration:   m.game.Played(),
		Difficulty: m.difficulty,
		Seed:       m.game.Seed(),
	}
}
