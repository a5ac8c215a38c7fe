package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings shared by the level, game and win screens.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	Restart key.Binding
	Back    key.Binding
	Scores  key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "right"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "menu"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// levelHelp, gameHelp and winHelp adapt the key map to help.KeyMap for each
// screen so the help bar only lists keys that do something there.
type levelHelp struct{ k KeyMap }

func (h levelHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Flip, h.k.Scores, h.k.Quit}
}

func (h levelHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

type gameHelp struct{ k KeyMap }

func (h gameHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Left, h.k.Right, h.k.Flip, h.k.Restart, h.k.Back, h.k.Quit}
}

func (h gameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{h.k.Up, h.k.Down, h.k.Left, h.k.Right},
		{h.k.Flip, h.k.Restart, h.k.Back, h.k.Quit},
	}
}

type winHelp struct{ k KeyMap }

func (h winHelp) ShortHelp() []key.Binding {
	again := key.NewBinding(
		key.WithKeys(append(h.k.Flip.Keys(), h.k.Restart.Keys()...)...),
		key.WithHelp("enter/r", "play again"),
	)
	return []key.Binding{again, h.k.Back, h.k.Quit}
}

func (h winHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
