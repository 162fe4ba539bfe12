package core

// Action represents a semantic simulation action, abstracted from physical
// key presses. Engines consume these high-level intents and never see raw
// terminal input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // Up arrow - cursor/direction/axis spin
	ActionDown              // Down arrow - cursor/direction/axis spin
	ActionLeft              // Left arrow - cursor/direction/axis spin
	ActionRight             // Right arrow - cursor/direction/axis spin
	ActionToggleCell        // S, Enter - flip the cell under the cursor (Life)
	ActionPause             // P - pause/resume the simulation
	ActionSingleStep        // N - advance one generation while paused (Life)
	ActionHistory           // H - toggle fading-trail display (Life)
	ActionClear             // C - kill every cell and pause (Life)
	ActionReset             // R - recreate the engine state from scratch
	ActionSpeedUp           // + - shorten the simulation step interval
	ActionSpeedDown         // - - lengthen the simulation step interval
	ActionQuit              // Q, Ctrl+C - exit back to the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionToggleCell:
		return "ToggleCell"
	case ActionPause:
		return "Pause"
	case ActionSingleStep:
		return "SingleStep"
	case ActionHistory:
		return "History"
	case ActionClear:
		return "Clear"
	case ActionReset:
		return "Reset"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state sampled for one simulation tick.
// It contains all actions that were triggered since the previous tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
