package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/stressbuster/internal/core"
)

// KeyMap defines the key bindings for the runner.
type KeyMap struct {
	Primary    key.Binding
	Duck       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Primary, k.Duck, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Primary, k.Duck},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Primary: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑", "start/jump"),
		),
		Duck: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "duck"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyAction is what a key press means to the host.
type KeyAction int

const (
	KeyNone KeyAction = iota
	KeyPrimary
	KeyDuck
	KeyScreenshot
	KeyQuit
)

// MapKey translates a key message to a host action.
func (k KeyMap) MapKey(msg tea.KeyMsg) KeyAction {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot
	case key.Matches(msg, k.Primary):
		return KeyPrimary
	case key.Matches(msg, k.Duck):
		return KeyDuck
	}
	return KeyNone
}

// MapMouse translates a mouse message. A left-button press is the primary
// input; everything else is ignored.
func MapMouse(msg tea.MouseMsg) core.Event {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.EventPrimary
	}
	return core.EventNone
}
