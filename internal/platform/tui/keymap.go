package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/moonacre/lunafarm/internal/core"
)

// KeyMap declares the farm's key bindings. Arrow keys and vim keys both
// move; holding shift doubles the movement impulse.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	FastUp    key.Binding
	FastDown  key.Binding
	FastLeft  key.Binding
	FastRight key.Binding
	Pickup    key.Binding
	Action    key.Binding
	Help      key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the stock bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		FastUp: key.NewBinding(
			key.WithKeys("shift+up", "K"),
			key.WithHelp("shift+↑/K", "dash up"),
		),
		FastDown: key.NewBinding(
			key.WithKeys("shift+down", "J"),
			key.WithHelp("shift+↓/J", "dash down"),
		),
		FastLeft: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←/H", "dash left"),
		),
		FastRight: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→/L", "dash right"),
		),
		Pickup: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pick up / put down"),
		),
		Action: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "use held item"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "redraw screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Command maps a key message to the logical command it triggers, or CmdNone.
func (km KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, km.Quit):
		return core.CmdQuit
	case key.Matches(msg, km.FastUp):
		return core.CmdShiftUp
	case key.Matches(msg, km.FastDown):
		return core.CmdShiftDown
	case key.Matches(msg, km.FastLeft):
		return core.CmdShiftLeft
	case key.Matches(msg, km.FastRight):
		return core.CmdShiftRight
	case key.Matches(msg, km.Up):
		return core.CmdUp
	case key.Matches(msg, km.Down):
		return core.CmdDown
	case key.Matches(msg, km.Left):
		return core.CmdLeft
	case key.Matches(msg, km.Right):
		return core.CmdRight
	case key.Matches(msg, km.Pickup):
		return core.CmdPickup
	case key.Matches(msg, km.Action):
		return core.CmdAction
	case key.Matches(msg, km.Help):
		return core.CmdToggleHelp
	case key.Matches(msg, km.Clear):
		return core.CmdClear
	}
	return core.CmdNone
}
