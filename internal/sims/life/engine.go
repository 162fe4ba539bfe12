// Package life implements Conway's Game of Life on a bounded rectangular
// grid. Cells outside the grid are permanently dead: a boundary cell simply
// has fewer than eight neighbors, there is no wraparound.
package life

import (
	"fmt"

	"github.com/vkarpenko/tui-sims/internal/config"
	"github.com/vkarpenko/tui-sims/internal/core"
	"github.com/vkarpenko/tui-sims/internal/registry"
)

const hudHeight = 2 // Title line plus separator

// Engine implements the Game of Life simulation.
type Engine struct {
	cols int
	rows int
	grid [][]bool // Indexed [row][col], rectangular

	cursor      core.Point
	paused      bool
	showHistory bool

	// Live cells of the previous and second-previous generation, kept for
	// fading-trail display. Overwritten wholesale every generation.
	dying []core.Point
	ghost []core.Point

	generation uint64
	elapsedMS  int // Running time of unpaused simulation

	tickRate       int
	stepEveryTicks int // Platform ticks between generations
	stepTicker     int

	cfg config.LifeConfig
}

var configPath string

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Game of Life engine.
func New() *Engine {
	return &Engine{}
}

func init() {
	registry.Register("life", func() registry.Sim {
		return New()
	})
}

// ID returns the simulation identifier.
func (e *Engine) ID() string {
	return "life"
}

// Title returns the display name.
func (e *Engine) Title() string {
	return "Game of Life"
}

// Description returns the menu pane text.
func (e *Engine) Description() string {
	return `Conway's Game of Life:
- Underpopulation: any live cell with fewer than two live neighbours dies.
- Stable population: any live cell with two or three live neighbours lives on.
- Overpopulation: any live cell with more than three live neighbours dies.
- Reproduction: any dead cell with exactly three live neighbours becomes live.

Starts paused: move the cursor, toggle cells, then resume.`
}

// Reset initializes the engine for the given viewport. The grid fills the
// viewport minus the HUD and border; dimensions never change mid-session.
func (e *Engine) Reset(cfg core.RuntimeConfig) error {
	// One usable cell column plus the border and HUD.
	if err := cfg.ValidateViewport(3, hudHeight+3); err != nil {
		return fmt.Errorf("life: %w", err)
	}
	cols := cfg.ScreenW - 2
	rows := cfg.ScreenH - hudHeight - 2

	lifeCfg, err := config.LoadLife(configPath)
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}
	e.cfg = lifeCfg

	e.cols = cols
	e.rows = rows
	e.grid = newGrid(cols, rows)
	e.cursor = core.Point{X: cols / 2, Y: rows / 2}
	e.paused = true
	e.showHistory = lifeCfg.History
	e.dying = nil
	e.ghost = nil
	e.generation = 0
	e.elapsedMS = 0

	e.tickRate = cfg.TickRate
	if e.tickRate <= 0 {
		e.tickRate = 60
	}
	e.stepEveryTicks = lifeCfg.Timing.StepEveryTicks
	e.stepTicker = 0
	return nil
}

func newGrid(cols, rows int) [][]bool {
	g := make([][]bool, rows)
	for y := range g {
		g[y] = make([]bool, cols)
	}
	return g
}

// Step processes one platform tick: input first, then a generation advance
// when the step interval has elapsed. Pausing gates the advance only;
// cursor movement and cell editing keep working.
func (e *Engine) Step(in core.InputFrame) core.StepResult {
	switch {
	case in.Has(core.ActionLeft):
		e.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		e.moveCursor(1, 0)
	case in.Has(core.ActionUp):
		e.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		e.moveCursor(0, 1)
	case in.Has(core.ActionToggleCell):
		e.toggleCursorCell()
	case in.Has(core.ActionPause):
		e.paused = !e.paused
	case in.Has(core.ActionSingleStep):
		if e.paused {
			e.advance()
		}
	case in.Has(core.ActionHistory):
		e.showHistory = !e.showHistory
	case in.Has(core.ActionClear):
		e.clear()
	case in.Has(core.ActionSpeedUp):
		e.stepEveryTicks = core.Max(e.cfg.Timing.MinStepTicks, e.stepEveryTicks-e.cfg.Timing.SpeedDelta)
	case in.Has(core.ActionSpeedDown):
		e.stepEveryTicks = core.Min(e.cfg.Timing.MaxStepTicks, e.stepEveryTicks+e.cfg.Timing.SpeedDelta)
	}

	e.stepTicker++
	if e.stepTicker >= e.stepEveryTicks {
		e.stepTicker = 0
		if !e.paused {
			e.advance()
		}
	}

	return core.StepResult{State: e.State()}
}

// advance computes the next generation from the current one. The new grid is
// derived entirely from the old: no cell sees partially updated neighbors.
func (e *Engine) advance() {
	next := newGrid(e.cols, e.rows)

	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			n := e.liveNeighbors(x, y)
			switch {
			case e.grid[y][x] && n < 2: // underpopulation
				next[y][x] = false
			case e.grid[y][x] && n > 3: // overpopulation
				next[y][x] = false
			case !e.grid[y][x] && n == 3: // reproduction
				next[y][x] = true
			default: // stable population
				next[y][x] = e.grid[y][x]
			}
		}
	}

	e.ghost = e.dying
	e.dying = e.aliveCells()
	e.grid = next
	e.generation++
	e.elapsedMS += e.stepEveryTicks * 1000 / e.tickRate
}

// liveNeighbors counts live cells in the Moore neighborhood of (x, y).
// A neighbor coordinate is valid iff 0 <= coord < dimension.
func (e *Engine) liveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx >= 0 && nx < e.cols && ny >= 0 && ny < e.rows && e.grid[ny][nx] {
				n++
			}
		}
	}
	return n
}

// aliveCells collects the coordinates of all live cells.
func (e *Engine) aliveCells() []core.Point {
	var alive []core.Point
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			if e.grid[y][x] {
				alive = append(alive, core.Point{X: x, Y: y})
			}
		}
	}
	return alive
}

// moveCursor shifts the cursor, clamped to the grid bounds.
func (e *Engine) moveCursor(dx, dy int) {
	e.cursor.X = core.Clamp(e.cursor.X+dx, 0, e.cols-1)
	e.cursor.Y = core.Clamp(e.cursor.Y+dy, 0, e.rows-1)
}

// toggleCursorCell flips the cell under the cursor. History sets are not
// touched.
func (e *Engine) toggleCursorCell() {
	e.grid[e.cursor.Y][e.cursor.X] = !e.grid[e.cursor.Y][e.cursor.X]
}

// clear kills every cell, drops the trail, forces pause, and resets the
// session timer.
func (e *Engine) clear() {
	e.grid = newGrid(e.cols, e.rows)
	e.dying = nil
	e.ghost = nil
	e.paused = true
	e.elapsedMS = 0
	e.generation = 0
}

// State returns the current externally visible state.
func (e *Engine) State() core.SimState {
	return core.SimState{Paused: e.paused}
}

// Render draws the grid, trail, and cursor to the screen.
func (e *Engine) Render(dst *core.Screen) {
	dst.Clear()

	status := "playing"
	if e.paused {
		status = "paused"
	}
	hud := fmt.Sprintf(" Game of Life — %s  gen: %d  timer: %ds  step: %dms",
		status, e.generation, e.elapsedMS/1000, e.stepEveryTicks*1000/e.tickRate)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawBox(core.NewRect(0, hudHeight, e.cols+2, e.rows+2))

	if e.showHistory {
		for _, p := range e.ghost {
			dst.SetColored(1+p.X, hudHeight+1+p.Y, '█', core.ColorDimCyan)
		}
		for _, p := range e.dying {
			dst.SetColored(1+p.X, hudHeight+1+p.Y, '█', core.ColorDeepCyan)
		}
	}
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			if e.grid[y][x] {
				dst.SetColored(1+x, hudHeight+1+y, '█', core.ColorBrightCyan)
			}
		}
	}
	dst.SetColored(1+e.cursor.X, hudHeight+1+e.cursor.Y, '█', core.ColorBrightWhite)
}
