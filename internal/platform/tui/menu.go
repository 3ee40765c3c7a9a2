package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceStart
	ChoiceLeaderboard
	ChoiceQuit
)

// MenuItem is a selectable line of the start menu.
type MenuItem struct {
	Choice MenuChoice
	Title  string
}

var menuItems = []MenuItem{
	{ChoiceStart, "Start Game"},
	{ChoiceLeaderboard, "Leaderboard"},
	{ChoiceQuit, "Quit"},
}

var titleArt = []string{
	` _____ _____ _____ ____  ___ ____  `,
	`|_   _| ____|_   _|  _ \|_ _/ ___| `,
	`  | | |  _|   | | | |_) || |\___ \ `,
	`  | | | |___  | | |  _ < | | ___) |`,
	`  |_| |_____| |_| |_| \_\___|____/ `,
}

// titleColors cycle over the lines of the title art.
var titleColors = []lipgloss.Color{"1", "3", "2", "6"}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuItemStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
)

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	selected MenuChoice
}

// NewMenuModel creates a start menu for a width x height terminal.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{width: width, height: height}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.selected = ChoiceQuit
		case MenuActionUp:
			m.cursor = core.Wrap(m.cursor-1, len(menuItems))
		case MenuActionDown:
			m.cursor = core.Wrap(m.cursor+1, len(menuItems))
		case MenuActionSelect:
			m.selected = menuItems[m.cursor].Choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	for i, line := range titleArt {
		style := lipgloss.NewStyle().Bold(true).Foreground(titleColors[i%len(titleColors)])
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, item := range menuItems {
		if i == m.cursor {
			b.WriteString(menuCursorStyle.Render("> " + item.Title + " <"))
		} else {
			b.WriteString(menuItemStyle.Render("  " + item.Title + "  "))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("w/s: navigate  enter: select  q: quit"))

	content := lipgloss.JoinVertical(lipgloss.Center, strings.Split(b.String(), "\n")...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Selected returns the chosen entry, or ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Cursor returns the highlighted entry index.
func (m MenuModel) Cursor() int {
	return m.cursor
}
