package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// KeyMap defines the key bindings for the start screen and the game.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Start key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.Quit},
	}
}

// DefaultKeyMap returns the fixed bindings: arrows move, enter/space start.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys(string(pong.MoveUpKey)),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys(string(pong.MoveDownKey)),
			key.WithHelp("↓", "move down"),
		),
		Start: key.NewBinding(
			key.WithKeys(string(core.KeyEnter), string(core.KeySpace)),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys(string(core.KeyQuit), string(core.KeyEsc), "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// playingKeyMap hides the start binding once the game runs.
func playingKeyMap() KeyMap {
	k := DefaultKeyMap()
	k.Start.SetEnabled(false)
	return k
}

// keyOf normalizes a Bubble Tea key message to a core key.
func keyOf(msg tea.KeyMsg) core.Key {
	return core.Key(msg.String())
}

// opposite returns the other move key, or "" for anything else.
func opposite(k core.Key) core.Key {
	switch k {
	case pong.MoveUpKey:
		return pong.MoveDownKey
	case pong.MoveDownKey:
		return pong.MoveUpKey
	default:
		return ""
	}
}
