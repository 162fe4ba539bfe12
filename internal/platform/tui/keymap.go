package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkarpenko/tui-sims/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left":
		return core.ActionLeft, false
	case "right":
		return core.ActionRight, false
	case "up":
		return core.ActionUp, false
	case "down":
		return core.ActionDown, false
	case "s", "enter":
		return core.ActionToggleCell, false
	case "p":
		return core.ActionPause, false
	case "n":
		return core.ActionSingleStep, false
	case "h":
		return core.ActionHistory, false
	case "c":
		return core.ActionClear, false
	case "r":
		return core.ActionReset, false
	case "+", "=":
		return core.ActionSpeedUp, false
	case "-":
		return core.ActionSpeedDown, false
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

// MenuAction represents a menu-specific action derived from input.
// Navigation keys are not mapped here: the menu's list widget handles them
// itself, so only selection and quit need translating.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}

// SimKeyMap holds the help-footer bindings for one simulation.
// It implements help.KeyMap.
type SimKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns bindings for the one-line help view.
func (k SimKeyMap) ShortHelp() []key.Binding {
	return k.short
}

// FullHelp returns bindings for the expanded help view.
func (k SimKeyMap) FullHelp() [][]key.Binding {
	return k.full
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help))
}

// LifeKeyMap returns the help bindings for the Game of Life.
func LifeKeyMap() SimKeyMap {
	arrows := key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "move cursor"))
	toggle := binding("s", "swap cell state")
	pause := binding("p", "pause/resume")
	step := binding("n", "single step")
	history := binding("h", "history trail")
	clear := binding("c", "clear grid")
	speed := key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "speed"))
	quit := binding("q", "back to menu")
	return SimKeyMap{
		short: []key.Binding{arrows, toggle, pause, clear, quit},
		full: [][]key.Binding{
			{arrows, toggle, pause},
			{step, history, clear},
			{speed, quit},
		},
	}
}

// SnakeKeyMap returns the help bindings for Snake.
func SnakeKeyMap() SimKeyMap {
	arrows := key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "change direction"))
	reset := binding("r", "reset game")
	speed := key.NewBinding(key.WithKeys("+", "-"), key.WithHelp("+/-", "speed"))
	quit := binding("q", "back to menu")
	return SimKeyMap{
		short: []key.Binding{arrows, reset, quit},
		full: [][]key.Binding{
			{arrows, reset},
			{speed, quit},
		},
	}
}

// CubeKeyMap returns the help bindings for the cube.
func CubeKeyMap() SimKeyMap {
	arrows := key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("arrows", "spin cube"))
	reset := binding("r", "reset cube")
	quit := binding("q", "back to menu")
	return SimKeyMap{
		short: []key.Binding{arrows, reset, quit},
		full: [][]key.Binding{
			{arrows, reset},
			{quit},
		},
	}
}

// KeyMapFor returns the help bindings for the given simulation ID.
func KeyMapFor(simID string) SimKeyMap {
	switch simID {
	case "life":
		return LifeKeyMap()
	case "snake":
		return SnakeKeyMap()
	case "cube":
		return CubeKeyMap()
	default:
		return SimKeyMap{}
	}
}
