package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GameKeyMap defines the key bindings while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	RotateCW   key.Binding
	RotateCCW  key.Binding
	Drop       key.Binding
	Pause      key.Binding
	SpeedDown  key.Binding
	SpeedReset key.Binding
	SpeedUp    key.Binding
	Forfeit    key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.RotateCW, k.RotateCCW, k.Drop, k.Pause, k.Forfeit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop},
		{k.RotateCW, k.RotateCCW},
		{k.Pause, k.SpeedDown, k.SpeedReset, k.SpeedUp},
		{k.Forfeit, k.Quit},
	}
}

// DefaultGameKeyMap returns the default in-game bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("a", "left"),
			key.WithHelp("a/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("d", "right"),
			key.WithHelp("d/→", "right"),
		),
		RotateCW: key.NewBinding(
			key.WithKeys("e", "up"),
			key.WithHelp("e/↑", "rotate"),
		),
		RotateCCW: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "rotate back"),
		),
		Drop: key.NewBinding(
			key.WithKeys("s", "down", " "),
			key.WithHelp("s/space", "drop"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		SpeedDown: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "slower"),
		),
		SpeedReset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "normal speed"),
		),
		SpeedUp: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "faster"),
		),
		Forfeit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k GameKeyMap) Action(msg tea.KeyMsg) core.Action {
	bindings := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.RotateCW, core.ActionRotateCW},
		{k.RotateCCW, core.ActionRotateCCW},
		{k.Drop, core.ActionDrop},
		{k.Pause, core.ActionPause},
		{k.SpeedDown, core.ActionSpeedDown},
		{k.SpeedReset, core.ActionSpeedReset},
		{k.SpeedUp, core.ActionSpeedUp},
		{k.Forfeit, core.ActionBack},
		{k.Quit, core.ActionQuit},
	}
	for _, b := range bindings {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
