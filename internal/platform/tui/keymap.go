package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spawnproof/internal/core"
	"github.com/vovakirdan/spawnproof/internal/grid"
)

// KeyMap defines the key bindings for the editor.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Click  key.Binding
	Rect   key.Binding
	Circle key.Binding
	Fill   key.Binding
	Grow   key.Binding
	Shrink key.Binding
	Code   key.Binding
	Save   key.Binding
	Export key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Code, k.Rect, k.Circle, k.Fill, k.Save, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Click},
		{k.Code, k.Rect, k.Circle, k.Fill},
		{k.Grow, k.Shrink},
		{k.Save, k.Export, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "cursor up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "cursor down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "cursor left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "cursor right"),
		),
		Click: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "click"),
		),
		Rect: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rectangle"),
		),
		Circle: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "circle"),
		),
		Fill: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fill"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "grow radius"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "shrink radius"),
		),
		Code: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4"),
			key.WithHelp("0-4", "block"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save & exit"),
		),
		Export: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "blueprint & exit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to editor actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. For ActionSelect the
// selected cell code is returned as well.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, grid.Code) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0
	case key.Matches(msg, k.Up):
		return core.ActionUp, 0
	case key.Matches(msg, k.Down):
		return core.ActionDown, 0
	case key.Matches(msg, k.Left):
		return core.ActionLeft, 0
	case key.Matches(msg, k.Right):
		return core.ActionRight, 0
	case key.Matches(msg, k.Click):
		return core.ActionClick, 0
	case key.Matches(msg, k.Rect):
		return core.ActionRectMode, 0
	case key.Matches(msg, k.Circle):
		return core.ActionCircleMode, 0
	case key.Matches(msg, k.Fill):
		return core.ActionFillMode, 0
	case key.Matches(msg, k.Grow):
		return core.ActionGrow, 0
	case key.Matches(msg, k.Shrink):
		return core.ActionShrink, 0
	case key.Matches(msg, k.Code):
		return core.ActionSelect, grid.Code(msg.String()[0] - '0')
	case key.Matches(msg, k.Save):
		return core.ActionSave, 0
	case key.Matches(msg, k.Export):
		return core.ActionExport, 0
	case key.Matches(msg, k.Help):
		return core.ActionHelp, 0
	}
	return core.ActionNone, 0
}
