// Package snake implements a self-avoiding snake on a bounded grid. The
// snake starts as a single idle segment at the viewport center, grows by
// eating food, and dies on wall or self contact. Death is terminal until an
// explicit reset.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vkarpenko/tui-sims/internal/config"
	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

const hudHeight = 2

// Direction represents the snake's movement direction.
type Direction int

const (
	DirIdle Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirIdle:
		return "idle"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// reverse returns the opposite direction. Idle has no opposite.
func (d Direction) reverse() Direction {
	switch d {
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	default:
		return DirIdle
	}
}

// delta returns the unit step for the direction in screen coordinates.
func (d Direction) delta() (int, int) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Engine implements the Snake simulation.
type Engine struct {
	cols int
	rows int
	rng  *rand.Rand

	// Body cells, tail first. The head is the last element. While the snake
	// is alive all coordinates are pairwise distinct and in bounds.
	body    []core.Point
	dir     Direction
	nextDir Direction
	dead    bool
	food    core.Point

	tickRate       int
	stepEveryTicks int
	stepTicker     int

	cfg config.SnakeConfig
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Snake engine.
func New() *Engine {
	return &Engine{}
}

func init() {
	registry.Register("snake", func() registry.Sim {
		return New()
	})
}

// ID returns the simulation identifier.
func (e *Engine) ID() string {
	return "snake"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Snake"
}

// Description returns the menu pane text.
func (e *Engine) Description() string {
	return `Snake:
Control a snake, eat apples but not yourself and don't crash into walls!

Arrows steer, R resets after death.`
}

// Reset initializes the engine for the given viewport: a one-segment body
// at the center, idle direction, and fresh food.
func (e *Engine) Reset(cfg core.RuntimeConfig) error {
	// A 1x1 grid cannot hold the snake and its food at once, so the arena
	// needs at least two cell columns inside the border.
	if err := cfg.ValidateViewport(4, hudHeight+3); err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	cols := cfg.ScreenW - 2
	rows := cfg.ScreenH - hudHeight - 2

	snakeCfg, err := config.LoadSnake(configPath)
	if err != nil {
		return fmt.Errorf("snake: %w", err)
	}
	e.cfg = snakeCfg

	e.cols = cols
	e.rows = rows
	e.rng = rand.New(rand.NewSource(cfg.Seed))

	e.tickRate = cfg.TickRate
	if e.tickRate <= 0 {
		e.tickRate = 60
	}
	e.stepEveryTicks = snakeCfg.Timing.StepEveryTicks
	e.stepTicker = 0

	e.respawn()
	return nil
}

// respawn recreates the body and food without touching timing state, so a
// mid-session reset keeps the current speed.
func (e *Engine) respawn() {
	e.body = []core.Point{{X: e.cols / 2, Y: e.rows / 2}}
	e.dir = DirIdle
	e.nextDir = DirIdle
	e.dead = false
	e.spawnFood()
}

// spawnFood samples a uniform random cell and retries until it lands off the
// body. The grid is far larger than the body in practice, so the retry loop
// terminates quickly.
func (e *Engine) spawnFood() {
	for {
		p := core.Point{X: e.rng.Intn(e.cols), Y: e.rng.Intn(e.rows)}
		if !e.occupied(p) {
			e.food = p
			return
		}
	}
}

// occupied reports whether the body covers the given cell.
func (e *Engine) occupied(p core.Point) bool {
	for _, seg := range e.body {
		if seg == p {
			return true
		}
	}
	return false
}

// SetDirection records a pending direction change. The exact reverse of the
// current direction is rejected to prevent instant self-collision; idle
// accepts any direction.
func (e *Engine) SetDirection(d Direction) {
	if d != DirIdle && d == e.dir.reverse() {
		return
	}
	e.nextDir = d
}

// Step processes one platform tick: input first, then a movement step when
// the interval has elapsed.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionLeft):
		e.SetDirection(DirLeft)
	case in.Has(core.ActionRight):
		e.SetDirection(DirRight)
	case in.Has(core.ActionUp):
		e.SetDirection(DirUp)
	case in.Has(core.ActionDown):
		e.SetDirection(DirDown)
	case in.Has(core.ActionReset):
		e.respawn()
	case in.Has(core.ActionSpeedUp):
		e.stepEveryTicks = core.Max(e.cfg.Timing.MinStepTicks, e.stepEveryTicks-e.cfg.Timing.SpeedDelta)
	case in.Has(core.ActionSpeedDown):
		e.stepEveryTicks = core.Min(e.cfg.Timing.MaxStepTicks, e.stepEveryTicks+e.cfg.Timing.SpeedDelta)
	}

	e.stepTicker++
	if e.stepTicker >= e.stepEveryTicks {
		e.stepTicker = 0
		e.move()
	}

	return core.StepResult{State: e.State()}
}

// move advances the snake by one cell. No-op while dead or idle. A collision
// leaves the body in its final pre-collision configuration for rendering.
func (e *Engine) move() {
	if e.dead {
		return
	}
	e.dir = e.nextDir
	if e.dir == DirIdle {
		return
	}

	dx, dy := e.dir.delta()
	head := e.body[len(e.body)-1]
	candidate := head.Add(dx, dy)

	if !candidate.In(e.cols, e.rows) || e.occupied(candidate) {
		e.dead = true
		return
	}

	if candidate == e.food {
		e.body = append(e.body, candidate)
		e.spawnFood()
		return
	}

	e.body = append(e.body[1:], candidate)
}

// State returns the current externally visible state.
func (e *Engine) State() core.SimState {
	return core.SimState{Over: e.dead}
}

// Render draws the arena, body, and food to the screen.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	hud := fmt.Sprintf(" Snake — size: %d  step: %dms", len(e.body), e.stepEveryTicks*1000/e.tickRate)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawBox(core.NewRect(0, hudHeight, e.cols+2, e.rows+2))

	bodyColor := core.ColorBrightCyan
	if e.dead {
		bodyColor = core.ColorRed
	}
	for _, seg := range e.body {
		dst.SetColored(1+seg.X, hudHeight+1+seg.Y, '█', bodyColor)
	}
	dst.SetColored(1+e.food.X, hudHeight+1+e.food.Y, '●', core.ColorRed)

	if e.dead {
		dst.DrawTextCentered(dst.Height()/2, " Dead — press R to restart ")
	}
}
