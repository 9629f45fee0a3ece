package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/euartex/blockfit/internal/core"
)

// KeyMap holds the in-game key bindings. It also feeds the help footer.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Slot1   key.Binding
	Slot2   key.Binding
	Slot3   key.Binding
	Cycle   key.Binding
	Rotate  key.Binding
	Place   key.Binding
	NewGame key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding

	Screenshot key.Binding
}

// ShortHelp returns the bindings shown in the one-line footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Cycle, k.Rotate, k.Place, k.NewGame, k.Help, k.Back, k.Quit}
}

// FullHelp returns every binding, grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Slot1, k.Slot2, k.Slot3, k.Cycle},
		{k.Rotate, k.Place, k.NewGame},
		{k.Help, k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultKeyMap returns the default in-game bindings.
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
		Slot1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "block 1"),
		),
		Slot2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "block 2"),
		),
		Slot3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "block 3"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "rotate"),
		),
		Place: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "place"),
		),
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Slot1):
		return core.ActionSelect1, false
	case key.Matches(msg, k.Slot2):
		return core.ActionSelect2, false
	case key.Matches(msg, k.Slot3):
		return core.ActionSelect3, false
	case key.Matches(msg, k.Cycle):
		return core.ActionCycle, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.Place):
		return core.ActionPlace, false
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a mouse event in screen cells. Wheel and drag
// events are dropped; motion becomes a hover, a left release a click.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	switch msg.Action {
	case tea.MouseActionMotion:
		if msg.Button != tea.MouseButtonNone {
			return false
		}
		frame.Point(msg.X, msg.Y, false)
		return true
	case tea.MouseActionRelease:
		frame.Point(msg.X, msg.Y, true)
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
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
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
