package life

import (
	"errors"
	"strings"
	"testing"

	"github.com/vkarpenko/tui-sims/internal/core"
)

func newTestEngine(t *testing.T, w, h int) *Engine {
	t.Helper()
	e := New()
	if err := e.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: 60}); err != nil {
		t.Fatalf("Reset(%dx%d) failed: %v", w, h, err)
	}
	return e
}

func TestResetStartsPaused(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	if !e.paused {
		t.Error("Engine should start paused")
	}
	if e.generation != 0 {
		t.Errorf("Generation should be 0, got %d", e.generation)
	}
	if e.cursor.X != e.cols/2 || e.cursor.Y != e.rows/2 {
		t.Errorf("Cursor should start at center (%d,%d), got (%d,%d)",
			e.cols/2, e.rows/2, e.cursor.X, e.cursor.Y)
	}
	for y := 0; y < e.rows; y++ {
		for x := 0; x < e.cols; x++ {
			if e.grid[y][x] {
				t.Fatalf("Grid should start empty, found live cell at (%d,%d)", x, y)
			}
		}
	}
}

func TestResetTooSmall(t *testing.T) {
	e := New()
	err := e.Reset(core.RuntimeConfig{ScreenW: 2, ScreenH: 3, TickRate: 60})
	if err == nil {
		t.Fatal("Reset should fail for a viewport smaller than the HUD and border")
	}
	if !errors.Is(err, core.ErrInvalidViewport) {
		t.Errorf("Error should wrap ErrInvalidViewport, got %v", err)
	}
}

func TestLonelyCellDies(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	e.grid[5][5] = true
	e.advance()

	if e.grid[5][5] {
		t.Error("A cell with zero neighbors should die of underpopulation")
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	// Plus shape: the center sees 4 live neighbors and dies of
	// overpopulation; each arm sees 3 (center plus two arms) and lives.
	center := core.Point{X: 5, Y: 5}
	arms := []core.Point{{X: 4, Y: 5}, {X: 6, Y: 5}, {X: 5, Y: 4}, {X: 5, Y: 6}}
	e.grid[center.Y][center.X] = true
	for _, p := range arms {
		e.grid[p.Y][p.X] = true
	}

	if n := e.liveNeighbors(center.X, center.Y); n != 4 {
		t.Fatalf("Center should see 4 neighbors, got %d", n)
	}

	e.advance()

	if e.grid[center.Y][center.X] {
		t.Error("A cell with more than 3 neighbors should die of overpopulation")
	}
	for _, p := range arms {
		if !e.grid[p.Y][p.X] {
			t.Errorf("Arm cell (%d,%d) with 3 neighbors should survive", p.X, p.Y)
		}
	}
}

func TestBlockIsStill(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	// 2x2 block: every cell has exactly three neighbors
	block := []core.Point{{X: 4, Y: 4}, {X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}}
	for _, p := range block {
		e.grid[p.Y][p.X] = true
	}

	want := e.aliveCells()
	e.advance()
	got := e.aliveCells()

	if len(got) != len(want) {
		t.Fatalf("Block should be stable: %d cells before, %d after", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Block cell %d moved: %v -> %v", i, want[i], got[i])
		}
	}
}

func TestBlinkerOscillates(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	// Horizontal blinker at row 5
	for _, p := range []core.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}} {
		e.grid[p.Y][p.X] = true
	}

	e.advance()
	vertical := []core.Point{{X: 5, Y: 4}, {X: 5, Y: 5}, {X: 5, Y: 6}}
	for _, p := range vertical {
		if !e.grid[p.Y][p.X] {
			t.Errorf("Blinker should be vertical after one step, missing (%d,%d)", p.X, p.Y)
		}
	}
	if n := len(e.aliveCells()); n != 3 {
		t.Errorf("Blinker should keep 3 cells, got %d", n)
	}

	e.advance()
	horizontal := []core.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}}
	for _, p := range horizontal {
		if !e.grid[p.Y][p.X] {
			t.Errorf("Blinker should be horizontal again after two steps, missing (%d,%d)", p.X, p.Y)
		}
	}
}

func TestGliderTravels(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	// Standard glider placed mid-grid, clear of every edge; after four
	// generations it reappears shifted (+1,+1).
	const offX, offY = 20, 8
	glider := []core.Point{{X: offX + 1, Y: offY}, {X: offX + 2, Y: offY + 1},
		{X: offX, Y: offY + 2}, {X: offX + 1, Y: offY + 2}, {X: offX + 2, Y: offY + 2}}
	for _, p := range glider {
		e.grid[p.Y][p.X] = true
	}

	for i := 0; i < 4; i++ {
		e.advance()
	}

	for _, p := range glider {
		if !e.grid[p.Y+1][p.X+1] {
			t.Errorf("Glider should have moved (+1,+1), missing cell at (%d,%d)", p.X+1, p.Y+1)
		}
	}
	if n := len(e.aliveCells()); n != len(glider) {
		t.Errorf("Glider should keep %d cells, got %d", len(glider), n)
	}
}

func TestBoundaryNeighborCount(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	// Corner cell (0,0) with live neighbors at (1,0) and (0,1): out-of-grid
	// coordinates count as dead, including x == 0 and y == 0 neighbors.
	e.grid[0][0] = true
	e.grid[0][1] = true
	e.grid[1][0] = true

	if n := e.liveNeighbors(0, 0); n != 2 {
		t.Errorf("Corner cell should see 2 neighbors, got %d", n)
	}
	if n := e.liveNeighbors(1, 1); n != 3 {
		t.Errorf("Cell (1,1) should see 3 neighbors, got %d", n)
	}

	e.advance()
	if !e.grid[0][0] || !e.grid[0][1] || !e.grid[1][0] {
		t.Error("Corner triad should survive one step")
	}
	if !e.grid[1][1] {
		t.Error("Cell (1,1) should be born with exactly 3 neighbors")
	}
}

func TestCursorClampsAtEdges(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	in := core.NewInputFrame()
	for i := 0; i < e.cols+10; i++ {
		in.Clear()
		in.Set(core.ActionLeft)
		e.Step(in)
	}
	if e.cursor.X != 0 {
		t.Errorf("Cursor should clamp at left edge, got X=%d", e.cursor.X)
	}

	for i := 0; i < e.rows+10; i++ {
		in.Clear()
		in.Set(core.ActionDown)
		e.Step(in)
	}
	if e.cursor.Y != e.rows-1 {
		t.Errorf("Cursor should clamp at bottom edge, got Y=%d", e.cursor.Y)
	}
}

func TestToggleCell(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	in := core.NewInputFrame()
	in.Set(core.ActionToggleCell)
	e.Step(in)

	if !e.grid[e.cursor.Y][e.cursor.X] {
		t.Error("Toggle should turn the cursor cell on")
	}

	in.Clear()
	in.Set(core.ActionToggleCell)
	e.Step(in)

	if e.grid[e.cursor.Y][e.cursor.X] {
		t.Error("Second toggle should turn the cursor cell off")
	}
}

func TestPauseGatesAdvanceOnly(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	e.grid[5][5] = true

	// Paused: generations never advance, but editing still works.
	in := core.NewInputFrame()
	for i := 0; i < e.stepEveryTicks*3; i++ {
		in.Clear()
		e.Step(in)
	}
	if e.generation != 0 {
		t.Errorf("Paused engine should not advance, got generation %d", e.generation)
	}
	if !e.grid[5][5] {
		t.Error("Paused engine should not mutate the grid")
	}

	in.Clear()
	in.Set(core.ActionPause)
	res := e.Step(in)
	if res.State.Paused {
		t.Error("Pause action should resume a paused engine")
	}

	for i := 0; i < e.stepEveryTicks; i++ {
		in.Clear()
		e.Step(in)
	}
	if e.generation == 0 {
		t.Error("Running engine should advance after the step interval")
	}
}

func TestSingleStepWhilePaused(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	for _, p := range []core.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}} {
		e.grid[p.Y][p.X] = true
	}

	in := core.NewInputFrame()
	in.Set(core.ActionSingleStep)
	e.Step(in)

	if e.generation != 1 {
		t.Errorf("Single step should advance exactly one generation, got %d", e.generation)
	}
	if !e.paused {
		t.Error("Single step should leave the engine paused")
	}
}

func TestHistoryTrailDemotion(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	for _, p := range []core.Point{{X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}} {
		e.grid[p.Y][p.X] = true
	}

	e.advance()
	if len(e.dying) != 3 {
		t.Fatalf("Dying set should hold the previous generation (3 cells), got %d", len(e.dying))
	}
	if len(e.ghost) != 0 {
		t.Errorf("Ghost set should be empty after one step, got %d cells", len(e.ghost))
	}

	firstGen := append([]core.Point(nil), e.dying...)
	e.advance()

	if len(e.ghost) != len(firstGen) {
		t.Fatalf("Ghost set should hold the demoted generation, got %d cells", len(e.ghost))
	}
	for i, p := range firstGen {
		if e.ghost[i] != p {
			t.Errorf("Ghost cell %d mismatch: want %v, got %v", i, p, e.ghost[i])
		}
	}
}

func TestClearForcesPause(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	e.grid[5][5] = true
	e.grid[5][6] = true
	e.paused = false
	e.advance()
	e.advance()

	in := core.NewInputFrame()
	in.Set(core.ActionClear)
	e.Step(in)

	if !e.paused {
		t.Error("Clear should force pause")
	}
	if len(e.aliveCells()) != 0 {
		t.Error("Clear should kill every cell")
	}
	if len(e.dying) != 0 || len(e.ghost) != 0 {
		t.Error("Clear should drop the history trail")
	}
	if e.generation != 0 || e.elapsedMS != 0 {
		t.Errorf("Clear should reset counters, got gen=%d elapsed=%dms", e.generation, e.elapsedMS)
	}
}

func TestSpeedBounds(t *testing.T) {
	e := newTestEngine(t, 80, 24)

	in := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		in.Clear()
		in.Set(core.ActionSpeedUp)
		e.Step(in)
	}
	if e.stepEveryTicks != e.cfg.Timing.MinStepTicks {
		t.Errorf("Speed up should clamp at %d ticks, got %d", e.cfg.Timing.MinStepTicks, e.stepEveryTicks)
	}

	for i := 0; i < 100; i++ {
		in.Clear()
		in.Set(core.ActionSpeedDown)
		e.Step(in)
	}
	if e.stepEveryTicks != e.cfg.Timing.MaxStepTicks {
		t.Errorf("Speed down should clamp at %d ticks, got %d", e.cfg.Timing.MaxStepTicks, e.stepEveryTicks)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	e.grid[3][3] = true
	e.advance()

	snap := e.Snapshot()
	if len(snap.Dying) != 1 {
		t.Fatalf("Snapshot should carry 1 dying cell, got %d", len(snap.Dying))
	}
	snap.Dying[0] = core.Point{X: 99, Y: 99}
	if e.dying[0] == snap.Dying[0] {
		t.Error("Mutating a snapshot slice should not affect the engine")
	}
}

func TestRender(t *testing.T) {
	e := newTestEngine(t, 80, 24)
	e.grid[5][5] = true

	screen := core.NewScreen(80, 24)
	e.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Game of Life") {
		t.Error("HUD should contain the title")
	}
	if got := screen.GetCell(1+5, hudHeight+1+5); got.Rune != '█' || got.Color != core.ColorBrightCyan {
		t.Errorf("Live cell should render as a bright cyan block, got %q color %d", got.Rune, got.Color)
	}
	if got := screen.GetCell(1+e.cursor.X, hudHeight+1+e.cursor.Y); got.Color != core.ColorBrightWhite {
		t.Errorf("Cursor should render bright white, got color %d", got.Color)
	}
}
