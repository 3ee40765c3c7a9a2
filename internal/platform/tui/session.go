package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Options configures a session.
type Options struct {
	Config   config.TetrisConfig
	Runtime  core.RuntimeConfig
	Scores   *ScoreKeeper
	Logger   *log.Logger
	Player   string // recorded in the history when no initials are entered
	SkipMenu bool   // start the first game immediately
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenInitials
	screenScoreboard
)

// SessionModel moves the player through menu -> game -> initials ->
// scoreboard -> menu. It is the top-level model for local and SSH play.
type SessionModel struct {
	opts     Options
	screen   screen
	width    int
	height   int
	menu     MenuModel
	game     GameModel
	initials InitialsModel
	board    ScoreboardModel
	last     GameModel // finished game waiting for its initials
	quitting bool
}

// NewSessionModel creates a session for a width x height terminal.
func NewSessionModel(opts Options, width, height int) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scores == nil {
		opts.Scores = NewScoreKeeper("", nil, opts.Logger)
	}
	m := SessionModel{
		opts:   opts,
		width:  width,
		height: height,
		menu:   NewMenuModel(width, height),
	}
	if opts.SkipMenu {
		m.startGame()
	}
	return m
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenGame {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenInitials:
		return m.updateInitials(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch m.menu.Selected() {
	case ChoiceStart:
		m.startGame()
		return m, m.game.Init()
	case ChoiceLeaderboard:
		m.showScoreboard(-1)
		return m, m.board.Init()
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	}
	return m, cmd
}

// startGame switches to a fresh game. Every game gets its own seed unless
// one was configured.
func (m *SessionModel) startGame() {
	cfg := m.opts.Config
	m.game = NewGameModel(m.opts.Runtime, cfg.EngineTiming(), string(cfg.Difficulty.Preset), m.width, m.height)
	m.screen = screenGame
	m.opts.Logger.Debug("game started", "seed", m.game.Seed(), "difficulty", cfg.Difficulty.Preset)
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if !m.game.Finished() {
		return m, cmd
	}

	status := m.game.Status()
	m.opts.Logger.Info("game over", "score", status.Score, "lines", status.Lines, "level", status.Level)
	if m.opts.Scores.Qualifies(status.Score) {
		m.last = m.game
		m.initials = NewInitialsModel(status.Score, m.width, m.height)
		m.screen = screenInitials
		return m, m.initials.Init()
	}

	m.opts.Scores.Record(m.game.Record(m.opts.Player))
	m.showScoreboard(-1)
	return m, nil
}

func (m SessionModel) updateInitials(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.initials.Update(msg)
	m.initials = next.(InitialsModel)
	if !m.initials.Done() {
		return m, cmd
	}

	player := m.opts.Player
	highlight := -1
	if !m.initials.Skipped() {
		name := m.initials.Name()
		rank, err := m.opts.Scores.Add(name, m.initials.Score())
		if err != nil {
			m.opts.Logger.Error("cannot save leaderboard", "error", err)
		} else {
			player = name
			highlight = rank
		}
	}
	m.opts.Scores.Record(m.last.Record(player))
	m.showScoreboard(highlight)
	return m, nil
}

func (m *SessionModel) showScoreboard(highlight int) {
	m.board = NewScoreboardModel(m.opts.Scores.Entries(), m.opts.Scores.History(), highlight, m.width, m.height)
	m.screen = screenScoreboard
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.menu = NewMenuModel(m.width, m.height)
		m.screen = screenMenu
		return m, m.menu.Init()
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenInitials:
		return m.initials.View()
	case screenScoreboard:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// Run starts a local session on the current terminal.
func Run(opts Options, width, height int) error {
	p := tea.NewProgram(NewSessionModel(opts, width, height), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
