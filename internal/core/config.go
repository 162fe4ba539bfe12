package core

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport is returned when the terminal is too small to hold a
// usable simulation grid.
var ErrInvalidViewport = errors.New("core: viewport too small")

// RuntimeConfig contains configuration passed to simulations at reset.
// Engines use this to size their grids and for deterministic behavior.
// The viewport never changes for the lifetime of one play session.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in character cells
	ScreenH  int   // Viewport height in character cells
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means time-based in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// ValidateViewport checks that the viewport can hold a grid of at least
// minCols x minRows usable cells. Engines call this at reset and propagate
// the error to the host instead of constructing degenerate state.
func (c RuntimeConfig) ValidateViewport(minCols, minRows int) error {
	if c.ScreenW < minCols || c.ScreenH < minRows {
		return fmt.Errorf("%w: %dx%d, need at least %dx%d",
			ErrInvalidViewport, c.ScreenW, c.ScreenH, minCols, minRows)
	}
	return nil
}

// SimState represents the externally visible state of a simulation.
// Returned by Sim.State() to communicate status to the platform.
type SimState struct {
	Paused bool // Whether the simulation is paused
	Over   bool // Whether the simulation reached a terminal state (e.g. dead snake)
}

// StepResult is returned by Sim.Step() after each platform tick.
type StepResult struct {
	State SimState
}
