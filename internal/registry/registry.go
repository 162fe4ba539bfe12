// Package registry provides a global registry for simulation factories.
// Simulations register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vkarpenko/tui-sims/internal/core"
)

// Sim is the core interface that all simulations must implement.
// Simulations contain pure logic with no external dependencies (especially
// no Bubble Tea). The platform handles input mapping, timing, and display.
type Sim interface {
	// ID returns a unique identifier for this simulation (e.g. "life").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display (e.g. "Game of Life").
	Title() string

	// Description returns a short explanation shown in the menu pane.
	Description() string

	// Reset initializes or resets the simulation state for the given
	// viewport. Returns core.ErrInvalidViewport (wrapped) when the viewport
	// cannot hold a usable grid.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one platform tick. Input is
	// abstracted to semantic actions; at most one action-driven mutation is
	// applied per frame, and the internal simulation state advances only on
	// step-interval boundaries.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current externally visible state.
	State() core.SimState
}

// SimInfo contains metadata about a registered simulation.
type SimInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a simulation.
type Factory func() Sim

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a simulation factory to the registry.
// Typically called from a sim's init() function.
// Panics if a sim with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: sim %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered simulations, sorted by ID.
func List() []SimInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SimInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SimInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new simulation by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Sim, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown sim %q", id)
	}

	return f(), nil
}

// Exists checks if a simulation with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
