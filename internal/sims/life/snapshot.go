package life

import "github.com/vkarpenko/tui-sims/internal/core"

// Snapshot captures the read-only per-frame state handed to external
// collaborators: live cells, the two-generation trail, cursor, and timing.
type Snapshot struct {
	Cols, Rows     int
	Alive          []core.Point
	Dying          []core.Point
	Ghost          []core.Point
	Cursor         core.Point
	Paused         bool
	ShowHistory    bool
	Generation     uint64
	ElapsedSeconds int
	StepEveryTicks int
}

// Snapshot returns the current engine snapshot. The point slices are copies;
// mutating them does not affect the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Cols:           e.cols,
		Rows:           e.rows,
		Alive:          e.aliveCells(),
		Dying:          append([]core.Point(nil), e.dying...),
		Ghost:          append([]core.Point(nil), e.ghost...),
		Cursor:         e.cursor,
		Paused:         e.paused,
		ShowHistory:    e.showHistory,
		Generation:     e.generation,
		ElapsedSeconds: e.elapsedMS / 1000,
		StepEveryTicks: e.stepEveryTicks,
	}
}
