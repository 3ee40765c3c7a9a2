package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/leaderboard"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// scoreboardView selects the table shown on the scoreboard.
type scoreboardView int

const (
	viewHighScores scoreboardView = iota
	viewHistory
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "scores/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "enter"),
			key.WithHelp("enter/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

var (
	scoreboardTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				MarginBottom(1)
	scoreboardTableStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1)
	scoreboardEmptyStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Italic(true).
				Padding(2, 4)
)

// ScoreboardModel shows the high score table and the recent game history.
type ScoreboardModel struct {
	entries   []leaderboard.Entry
	history   []storage.GameRecord
	view      scoreboardView
	highlight int // rank of the entry just added, or -1
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the scoreboard. highlight selects a row of the
// high score table, use -1 for none.
func NewScoreboardModel(entries []leaderboard.Entry, history []storage.GameRecord, highlight, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		entries:   entries,
		history:   history,
		highlight: highlight,
		keys:      DefaultScoreboardKeyMap(),
		help:      help.New(),
		width:     width,
		height:    height,
	}
	m.help.Width = width
	m.rebuildTable()
	return m
}

// rebuildTable recreates the table for the current view and size.
func (m *ScoreboardModel) rebuildTable() {
	var columns []table.Column
	var rows []table.Row

	switch m.view {
	case viewHighScores:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Name", Width: 6},
			{Title: "Score", Width: 8},
		}
		rows = make([]table.Row, len(m.entries))
		for i, e := range m.entries {
			rows[i] = table.Row{fmt.Sprintf("#%02d", i+1), e.Name, fmt.Sprintf("%05d", e.Score)}
		}
	case viewHistory:
		columns = []table.Column{
			{Title: "Date", Width: 12},
			{Title: "Player", Width: 10},
			{Title: "Score", Width: 7},
			{Title: "Lines", Width: 5},
			{Title: "Lvl", Width: 3},
			{Title: "Time", Width: 8},
		}
		rows = make([]table.Row, len(m.history))
		for i, g := range m.history {
			rows[i] = table.Row{
				g.CreatedAt.Format("Jan 02 15:04"),
				g.Player,
				fmt.Sprintf("%d", g.Score),
				fmt.Sprintf("%d", g.Lines),
				fmt.Sprintf("%d", g.Level),
				g.Duration.Round(time.Second).String(),
			}
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(min(len(rows), m.height-8), 1)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	if m.view == viewHighScores && m.highlight >= 0 && m.highlight < len(rows) {
		t.SetCursor(m.highlight)
	}
	m.table = t
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewHighScores {
				m.view = viewHistory
			} else {
				m.view = viewHighScores
			}
			m.rebuildTable()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.rebuildTable()
		return m, nil
	}

	return m, nil
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	title := "HIGH SCORES"
	empty := "No scores recorded yet.\nPlay a game to set a high score!"
	if m.view == viewHistory {
		title = "RECENT GAMES"
		empty = "No games recorded yet."
	}

	var content string
	if len(m.table.Rows()) == 0 {
		content = scoreboardEmptyStyle.Render(empty)
	} else {
		content = m.table.View()
	}

	var b strings.Builder
	b.WriteString(scoreboardTitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(scoreboardTableStyle.Render(content))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	if m.width <= 0 || m.height <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// IsGoingBack returns true if the player wants to go back to the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the player wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
