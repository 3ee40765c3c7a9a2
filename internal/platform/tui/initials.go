package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/leaderboard"
)

var (
	initialsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	initialsBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(1, 3)
)

// InitialsModel asks for the initials of a new high score.
type InitialsModel struct {
	input   textinput.Model
	score   int
	width   int
	height  int
	done    bool
	skipped bool
}

// NewInitialsModel creates the entry screen for score.
func NewInitialsModel(score, width, height int) InitialsModel {
	ti := textinput.New()
	ti.Prompt = "Initials: "
	ti.Placeholder = strings.Repeat("_", leaderboard.NameLen)
	ti.CharLimit = leaderboard.NameLen
	ti.Width = leaderboard.NameLen + 1
	ti.Focus()

	return InitialsModel{input: ti, score: score, width: width, height: height}
}

// Init starts the cursor blink.
func (m InitialsModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the entry screen.
func (m InitialsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.done = true
			return m, nil
		case "esc":
			m.done = true
			m.skipped = true
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the entry screen.
func (m InitialsModel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		initialsTitleStyle.Render("NEW HIGH SCORE"),
		"",
		fmt.Sprintf("Score: %05d", m.score),
		"",
		m.input.View(),
		"",
		helpStyle.Render("enter: save  backspace: delete  esc: skip"),
	)
	box := initialsBoxStyle.Render(body)
	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Done reports whether the player confirmed or skipped the entry.
func (m InitialsModel) Done() bool {
	return m.done
}

// Skipped reports whether the player left without saving.
func (m InitialsModel) Skipped() bool {
	return m.skipped
}

// Score returns the score being entered.
func (m InitialsModel) Score() int {
	return m.score
}

// Name returns the typed initials padded to leaderboard.NameLen.
// Missing characters and underscores become spaces.
func (m InitialsModel) Name() string {
	name := []rune(strings.ReplaceAll(m.input.Value(), "_", " "))
	if len(name) > leaderboard.NameLen {
		name = name[:leaderboard.NameLen]
	}
	for len(name) < leaderboard.NameLen {
		name = append(name, ' ')
	}
	return string(name)
}
